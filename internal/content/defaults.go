package content

// ProductConfig is the storefront view of a catalog product.
type ProductConfig struct {
	ProductType string  `json:"product_type"`
	Label       string  `json:"label"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	ImageURL    string  `json:"image_url"`
}

// WeightOption is a weight tier enabled for a product.
type WeightOption struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Price     float64 `json:"price"`
	SortOrder int     `json:"sort_order"`
}

// SpecialCutOption is a butchering style shown in the wizard.
type SpecialCutOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url,omitempty"`
}

// productDefaults is the static catalog used whenever the database is empty or
// unreachable. Order matters for display.
var productDefaults = []ProductConfig{
	{ProductType: "half_sheep", Label: "½ Sheep", MinPrice: 500, MaxPrice: 700, ImageURL: "https://images.unsplash.com/photo-1509099836639-18ba1795216d?w=600&q=80"},
	{ProductType: "half_goat", Label: "½ Goat", MinPrice: 400, MaxPrice: 600, ImageURL: "https://images.unsplash.com/photo-1546445317-29f4545e9d53?w=600&q=80"},
	{ProductType: "whole_sheep", Label: "Whole Sheep", MinPrice: 1000, MaxPrice: 1400, ImageURL: "https://images.unsplash.com/photo-1516467508483-a7212febe31a?w=600&q=80"},
	{ProductType: "whole_goat", Label: "Whole Goat", MinPrice: 800, MaxPrice: 1200, ImageURL: "https://images.unsplash.com/photo-1578645510387-c3e02018f305?w=600&q=80"},
}

var specialCutsFallback = []SpecialCutOption{
	{ID: "arabic_8", Label: "تقطيع عربى 8 قطع", ImageURL: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&q=80"},
	{ID: "arabic_4", Label: "تقطيع عربى 4 قطع", ImageURL: "https://images.unsplash.com/photo-1558030006-450675393462?w=400&q=80"},
	{ID: "arabic_half_length", Label: "تقطيع عربى نص طول", ImageURL: "https://images.unsplash.com/photo-1603360946369-dc9bb6258143?w=400&q=80"},
	{ID: "fridge_medium", Label: "تقطيع ثلاجه (قطع متوسطة)", ImageURL: "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=400&q=80"},
	{ID: "full_ghozy", Label: "غوزي كامل", ImageURL: "https://images.unsplash.com/photo-1615937691194-96f16275d74c?w=400&q=80"},
	{ID: "salona_small", Label: "تقطيع صالونه(قطع صغيرة)", ImageURL: "https://images.unsplash.com/photo-1615937691172-6119668cae97?w=400&q=80"},
	{ID: "biryani_large", Label: "تقطيع برياني(قطع كبيرة)", ImageURL: "https://images.unsplash.com/photo-1615937691172-6119668cae97?w=400&q=80"},
	{ID: "hadrami_joints", Label: "حضرمي مفاصل", ImageURL: "https://images.unsplash.com/photo-1569050467447-ce54b3bbc37d?w=400&q=80"},
	{ID: "awlaqi_joints", Label: "عولقي مفاصل", ImageURL: "https://images.unsplash.com/photo-1569050467447-ce54b3bbc37d?w=400&q=80"},
	{ID: "maftah", Label: "مفطح", ImageURL: "https://images.unsplash.com/photo-1544027993-37dbfe43562a?w=400&q=80"},
}

var citiesFallback = []string{
	"Kuala Lumpur", "Shah Alam", "Petaling Jaya", "Johor Bahru", "Ipoh",
	"George Town", "Kuching", "Kota Kinabalu", "Alor Setar", "Kota Bharu",
	"Melaka", "Seremban", "Kuantan", "Kota Melaka", "Other",
}
