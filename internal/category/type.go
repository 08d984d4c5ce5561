package category

type CreateInput struct {
	Name string
	Icon string
}

type UpdateInput struct {
	ID   string
	Name string
	Icon string
}
