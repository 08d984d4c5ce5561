package http

import (
	"fintrack-api/internal/category"
	"fintrack-api/internal/model"
)

type categoryReq struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (req categoryReq) toCreateInput() category.CreateInput {
	return category.CreateInput{
		Name: req.Name,
		Icon: req.Icon,
	}
}

func (req categoryReq) toUpdateInput(id string) category.UpdateInput {
	return category.UpdateInput{
		ID:   id,
		Name: req.Name,
		Icon: req.Icon,
	}
}

type categoryResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (h Handler) newCategoryResp(cat model.Category) categoryResp {
	return categoryResp{
		ID:   cat.ID,
		Name: cat.Name,
		Icon: cat.Icon,
	}
}
