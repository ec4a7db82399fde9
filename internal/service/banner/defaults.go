package banner

import "daddybathbomb/internal/domain"

// minRotation is the floor for the landing rotation: the merge backfills
// with defaults until at least this many active banners exist.
const minRotation = 5

// defaultBanners seed the rotation and double as per-field fallbacks
// when a stored banner carries blank text. displayOrder is the stable
// identity joining stored rows to these slots.
var defaultBanners = []domain.HeroBanner{
	{
		MainTitle:    "DADDY BATH BOMB",
		SubTitle:     "Super Fun Fizzy Adventure",
		Description:  "Turn bath time into playtime with explosive colors and bubbles.",
		Tagline:      "SPLASH INTO FUN",
		PrimaryBtn:   "Shop Now",
		SecondaryBtn: "Watch Story",
		ImageURL:     "https://cdn.daddybathbomb.example/banners/galaxy-splash.jpg",
		IconName:     "Rocket",
		IconColor:    "#FF6BB3",
		IsActive:     true,
		DisplayOrder: 1,
	},
	{
		MainTitle:    "GALAXY FIZZ",
		SubTitle:     "Colors From Outer Space",
		Description:  "Swirling nebulas of purple and blue right in your tub.",
		Tagline:      "COSMIC BUBBLES",
		PrimaryBtn:   "Explore",
		SecondaryBtn: "Learn More",
		ImageURL:     "https://cdn.daddybathbomb.example/banners/galaxy-fizz.jpg",
		IconName:     "Star",
		IconColor:    "#7C6BFF",
		IsActive:     true,
		DisplayOrder: 2,
	},
	{
		MainTitle:    "TROPICAL SPLASH",
		SubTitle:     "Mango Pineapple Party",
		Description:  "Sweet island scents that melt the day away.",
		Tagline:      "TASTE THE TROPICS",
		PrimaryBtn:   "Shop Tropical",
		SecondaryBtn: "See Scents",
		ImageURL:     "https://cdn.daddybathbomb.example/banners/tropical-splash.jpg",
		IconName:     "Sun",
		IconColor:    "#FFB443",
		IsActive:     true,
		DisplayOrder: 3,
	},
	{
		MainTitle:    "LAVENDER DREAMS",
		SubTitle:     "Calm Night Soak",
		Description:  "Wind down with soft lavender foam and gentle shimmer.",
		Tagline:      "RELAX AND FLOAT",
		PrimaryBtn:   "Shop Calm",
		SecondaryBtn: "Bedtime Tips",
		ImageURL:     "https://cdn.daddybathbomb.example/banners/lavender-dreams.jpg",
		IconName:     "Moon",
		IconColor:    "#9B8CFF",
		IsActive:     true,
		DisplayOrder: 4,
	},
	{
		MainTitle:    "SUPER HERO SUDS",
		SubTitle:     "Power Up Your Bath",
		Description:  "Bold reds and blues for brave little heroes.",
		Tagline:      "BE THE HERO",
		PrimaryBtn:   "Join The Squad",
		SecondaryBtn: "Our Story",
		ImageURL:     "https://cdn.daddybathbomb.example/banners/super-hero-suds.jpg",
		IconName:     "Zap",
		IconColor:    "#FF4757",
		IsActive:     true,
		DisplayOrder: 5,
	},
}

// Defaults returns a copy of the built-in banner set.
func Defaults() []domain.HeroBanner {
	out := make([]domain.HeroBanner, len(defaultBanners))
	copy(out, defaultBanners)
	return out
}
