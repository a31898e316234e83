package domain

type Tag struct {
	Id    int
	Name  string
	Color string
}
