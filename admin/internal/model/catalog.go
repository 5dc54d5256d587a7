package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemStatus string

const (
	ItemAvailable ItemStatus = "Available"
	ItemBorrowed  ItemStatus = "Borrowed"
	ItemReserved  ItemStatus = "Reserved"
	ItemLost      ItemStatus = "Lost"
	ItemRemoved   ItemStatus = "Removed"
)

var validItemStatuses = map[ItemStatus]bool{
	ItemAvailable: true,
	ItemBorrowed:  true,
	ItemReserved:  true,
	ItemLost:      true,
	ItemRemoved:   true,
}

func IsValidItemStatus(s string) bool {
	return validItemStatuses[ItemStatus(s)]
}

// Book is one registration batch; physical units live in BookCopy.
type Book struct {
	ID                int64           `json:"id" db:"id"`
	BatchKey          string          `json:"batch_key" db:"batch_key"`
	Title             string          `json:"title" db:"title"`
	Author            string          `json:"author" db:"author"`
	Genre             *string         `json:"genre" db:"genre"`
	Department        *string         `json:"department" db:"department"`
	IsUsingDepartment bool            `json:"is_using_department" db:"is_using_department"`
	Publisher         *string         `json:"publisher" db:"publisher"`
	PublicationYear   *int            `json:"publication_year" db:"publication_year"`
	ISBN              *string         `json:"isbn" db:"isbn"`
	Price             decimal.Decimal `json:"price" db:"price"`
	ShelfLocationID   *int64          `json:"shelf_location_id" db:"shelf_location_id"`
	CoverPath         *string         `json:"cover,omitempty" db:"cover_path"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
}

// Classification returns the department or genre, whichever the batch uses.
func (b Book) Classification() string {
	if b.IsUsingDepartment && b.Department != nil {
		return *b.Department
	}
	if b.Genre != nil {
		return *b.Genre
	}
	return ""
}

type BookCopy struct {
	ID         int64           `json:"id" db:"id"`
	BookID     int64           `json:"book_id" db:"book_id"`
	CopyNumber int             `json:"copy_number" db:"copy_number"`
	QRPayload  string          `json:"qr_payload" db:"qr_payload"`
	Status     ItemStatus      `json:"status" db:"status"`
	Price      decimal.Decimal `json:"price" db:"price"`
}

type BookWithCopies struct {
	Book   `json:",inline"`
	Copies []BookCopy `json:"copies"`
}

// CatalogBook is the flattened copy view used by listings and chat tools.
type CatalogBook struct {
	BookID         int64      `json:"book_id" db:"book_id"`
	CopyID         int64      `json:"copy_id" db:"copy_id"`
	CopyNumber     int        `json:"copy_number" db:"copy_number"`
	Title          string     `json:"title" db:"title"`
	Author         string     `json:"author" db:"author"`
	Classification string     `json:"classification" db:"classification"`
	Status         ItemStatus `json:"status" db:"status"`
	ShelfNumber    *int       `json:"shelf_number" db:"shelf_number"`
	ShelfColumn    *string    `json:"shelf_column" db:"shelf_column"`
	ShelfRow       *int       `json:"shelf_row" db:"shelf_row"`
	Cover          *string    `json:"cover" db:"cover_path"`
}

type BookFilter struct {
	Status string
	Search string
	Page   int
	Size   int
}

type RegisterBooksRequest struct {
	Title             string          `json:"title" validate:"required"`
	Author            string          `json:"author" validate:"required"`
	Genre             *string         `json:"genre"`
	Department        *string         `json:"department"`
	IsUsingDepartment bool            `json:"is_using_department"`
	Publisher         *string         `json:"publisher"`
	PublicationYear   *int            `json:"publication_year"`
	ISBN              *string         `json:"isbn"`
	Price             decimal.Decimal `json:"price"`
	ShelfLocationID   *int64          `json:"shelf_location_id"`
	Quantity          int             `json:"quantity" validate:"required,min=1,max=200"`
	CoverPath         *string         `json:"cover"`
	CoverBlob         []byte          `json:"-"`
}

type UpdateBookRequest struct {
	Title             string          `json:"title" validate:"required"`
	Author            string          `json:"author" validate:"required"`
	Genre             *string         `json:"genre"`
	Department        *string         `json:"department"`
	IsUsingDepartment bool            `json:"is_using_department"`
	Publisher         *string         `json:"publisher"`
	PublicationYear   *int            `json:"publication_year"`
	ISBN              *string         `json:"isbn"`
	Price             decimal.Decimal `json:"price"`
	ShelfLocationID   *int64          `json:"shelf_location_id"`
}

type RegisterResult struct {
	Book   Book        `json:"book"`
	Copies []BookCopy  `json:"copies"`
	Errors []ItemError `json:"errors"`
}

type Cover struct {
	Path *string
	Blob []byte
}

type ResearchPaper struct {
	ID              int64           `json:"id" db:"id"`
	Title           string          `json:"title" db:"title"`
	Abstract        *string         `json:"abstract" db:"abstract"`
	Department      *string         `json:"department" db:"department"`
	YearPublication *int            `json:"year_publication" db:"year_publication"`
	ShelfLocationID *int64          `json:"shelf_location_id" db:"shelf_location_id"`
	QRPayload       *string         `json:"qr_payload" db:"qr_payload"`
	Status          ItemStatus      `json:"status" db:"status"`
	Price           decimal.Decimal `json:"price" db:"price"`
	Authors         []string        `json:"authors" db:"authors"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

type ResearchFilter struct {
	Status     string
	Search     string
	Department string
}

type ResearchRequest struct {
	Title           string          `json:"title" validate:"required"`
	Abstract        *string         `json:"abstract"`
	Department      *string         `json:"department"`
	YearPublication *int            `json:"year_publication"`
	ShelfLocationID *int64          `json:"shelf_location_id"`
	Price           decimal.Decimal `json:"price"`
	Authors         []string        `json:"authors" validate:"required,min=1,dive,required"`
}

type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "Pending"
	ReservationApproved ReservationStatus = "Approved"
	ReservationRejected ReservationStatus = "Rejected"
)

type Reservation struct {
	ID              int64             `json:"id" db:"id"`
	UserID          int64             `json:"user_id" db:"user_id"`
	BookCopyID      *int64            `json:"book_copy_id" db:"book_copy_id"`
	ResearchPaperID *int64            `json:"research_paper_id" db:"research_paper_id"`
	Status          ReservationStatus `json:"status" db:"status"`
	ReservationDate time.Time         `json:"reservation_date" db:"reservation_date"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`
}

type ReservationDetail struct {
	Reservation `json:",inline"`
	UserName    string `json:"user_name" db:"user_name"`
	ItemTitle   string `json:"item_title" db:"item_title"`
}

type CreateReservationRequest struct {
	UserID          int64  `json:"user_id" validate:"required"`
	BookCopyID      *int64 `json:"book_copy_id"`
	ResearchPaperID *int64 `json:"research_paper_id"`
}

type ShelfLocation struct {
	ID          int64  `json:"id" db:"id"`
	ShelfNumber int    `json:"shelf_number" db:"shelf_number"`
	ShelfColumn string `json:"shelf_column" db:"shelf_column"`
	ShelfRow    int    `json:"shelf_row" db:"shelf_row"`
}

// ShelfCellFilter selects grid cells of one shelf; nil fields match everything.
type ShelfCellFilter struct {
	ShelfNumber int
	Column      *string
	Row         *int
}

type ShelfGridRequest struct {
	Rows    int `json:"rows" validate:"required,min=1,max=50"`
	Columns int `json:"columns" validate:"required,min=1,max=26"`
}

type GridReport struct {
	Created int         `json:"created"`
	Existed int         `json:"existed"`
	Removed int64       `json:"removed"`
	Failed  int         `json:"failed"`
	Errors  []GridError `json:"errors"`
}

type GridError struct {
	Column string `json:"column"`
	Row    int    `json:"row"`
	Error  string `json:"error"`
}

type Administrator struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type AdministratorRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=Admin 'Super Admin'"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type Rule struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type RuleRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type FAQ struct {
	ID       int64  `json:"id" db:"id"`
	Question string `json:"question" db:"question"`
	Answer   string `json:"answer" db:"answer"`
}

type FAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []CatalogBook `json:"items"`
}
