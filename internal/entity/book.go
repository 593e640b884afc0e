package entity

// Book represents a single row in the books table. ID is nil until the
// store assigns one, so an unsaved book serializes as "id": null.
type Book struct {
	ID     *int64 `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}
