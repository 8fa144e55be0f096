package entity

type Player struct {
	ID     string `json:"id"`
	Symbol Symbol `json:"symbol"`
}
