package http

import (
	"time"

	"fintrack-api/internal/model"
	"fintrack-api/internal/transaction"
	"fintrack-api/pkg/paginator"
)

type createTransactionReq struct {
	Amount float64 `json:"amount"`
	Note   *string `json:"note"`
}

func (req createTransactionReq) toInput(categoryID string) transaction.CreateInput {
	return transaction.CreateInput{
		CategoryID: categoryID,
		Amount:     req.Amount,
		Note:       req.Note,
	}
}

type transactionResp struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

func (h Handler) newTransactionResp(trx model.Transaction) transactionResp {
	return transactionResp{
		ID:        trx.ID,
		Amount:    trx.Amount,
		Note:      trx.Note,
		CreatedAt: trx.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type listTransactionResp struct {
	Items     []transactionResp   `json:"items"`
	Paginator paginator.Paginator `json:"paginator"`
}

func (h Handler) newListTransactionResp(out transaction.ListOutput) listTransactionResp {
	items := make([]transactionResp, len(out.Transactions))
	for i, trx := range out.Transactions {
		items[i] = h.newTransactionResp(trx)
	}
	return listTransactionResp{
		Items:     items,
		Paginator: out.Paginator,
	}
}
