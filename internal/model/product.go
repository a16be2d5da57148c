package model

// Product is the slice of a remote catalog product the service reads.
type Product struct {
	Title string `json:"title"`
	Tags  string `json:"tags"`
}

type GeneratedName struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
