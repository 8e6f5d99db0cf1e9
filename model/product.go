package model

type Category struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	NameRu string `json:"name_ru"`
	Image  string `json:"image"`
}

type Product struct {
	ID         uint64  `json:"id"`
	CategoryID uint64  `json:"category_id"`
	Name       string  `json:"name"`
	NameRu     string  `json:"name_ru"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
}

// LocalizedName returns the Russian variant for "ru" when present, the
// default name otherwise.
func (p Product) LocalizedName(language string) string {
	if language == "ru" && p.NameRu != "" {
		return p.NameRu
	}
	return p.Name
}
