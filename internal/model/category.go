package model

// Category 活動分類
type Category string

const (
	CategoryMusic      Category = "music"
	CategoryArt        Category = "art"
	CategorySports     Category = "sports"
	CategoryTechnology Category = "technology"
	CategoryFood       Category = "food"
	CategoryBusiness   Category = "business"
)

// Categories 固定的分類集合，順序即選單順序
var Categories = []Category{
	CategoryMusic,
	CategoryArt,
	CategorySports,
	CategoryTechnology,
	CategoryFood,
	CategoryBusiness,
}

// IsValid 驗證分類是否在固定集合內
func (c Category) IsValid() bool {
	switch c {
	case CategoryMusic, CategoryArt, CategorySports, CategoryTechnology, CategoryFood, CategoryBusiness:
		return true
	}
	return false
}

// Label 選單顯示用，首字大寫其餘小寫
func (c Category) Label() string {
	s := string(c)
	if s == "" {
		return ""
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
