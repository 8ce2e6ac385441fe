package domain

type (
	Email    = string
	Password = string
	Username = string
	UserId   = int64

	BoardId   = int64
	BoardName = string

	SectionId    = int64
	SectionTitle = string

	CardId   = int64
	CardName = string

	FavoriteId = int64
)

// DateLayout is the wire and storage format of card due dates.
const DateLayout = "2006-01-02"
