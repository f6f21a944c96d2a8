package models

// QSLCard is a QSL card design from a given year.
type QSLCard struct {
	Base   `bson:",inline"`
	Image  string `json:"image" bson:"image"`
	Year   string `json:"year" bson:"year"`
	Design string `json:"design" bson:"design"`
}

type QSLCardCreate struct {
	Image  string `json:"image" validate:"required"`
	Year   string `json:"year" validate:"required"`
	Design string `json:"design" validate:"required"`
}

func NewQSLCard(c QSLCardCreate) (*QSLCard, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return &QSLCard{Image: c.Image, Year: c.Year, Design: c.Design}, nil
}

// Achievement is an award or milestone, e.g. DXCC Honor Roll.
type Achievement struct {
	Base        `bson:",inline"`
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	Year        string  `json:"year" bson:"year"`
	Category    *string `json:"category" bson:"category,omitempty"`
}

type AchievementCreate struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Year        string  `json:"year" validate:"required"`
	Category    *string `json:"category"`
}

func NewAchievement(c AchievementCreate) (*Achievement, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return &Achievement{Title: c.Title, Description: c.Description, Year: c.Year, Category: c.Category}, nil
}

// Gallery is a photo of the station.
type Gallery struct {
	Base        `bson:",inline"`
	Image       string  `json:"image" bson:"image"`
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	Category    *string `json:"category" bson:"category,omitempty"`
}

type GalleryCreate struct {
	Image       string  `json:"image" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    *string `json:"category"`
}

func NewGallery(c GalleryCreate) (*Gallery, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return &Gallery{Image: c.Image, Title: c.Title, Description: c.Description, Category: c.Category}, nil
}
