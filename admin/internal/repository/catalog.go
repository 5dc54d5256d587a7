package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

var bookColumns = []string{
	"id", "batch_key", "title", "author", "genre", "department", "is_using_department",
	"publisher", "publication_year", "isbn", "price", "shelf_location_id",
	"coalesce(cover_path, case when cover_blob is not null then '' end) as cover_path",
	"created_at",
}

var copyColumns = []string{"id", "book_id", "copy_number", "qr_payload", "status", "price"}

// catalogColumns flattens a copy with its batch and shelf.
var catalogColumns = []string{
	"b.id as book_id", "c.id as copy_id", "c.copy_number", "b.title", "b.author",
	"coalesce(case when b.is_using_department then b.department end, b.genre, '') as classification",
	"c.status", "s.shelf_number", "s.shelf_column", "s.shelf_row",
	"coalesce(b.cover_path, case when b.cover_blob is not null then '' end) as cover_path",
}

func catalogFrom() sq.SelectBuilder {
	return qb.Select(catalogColumns...).
		From(copiesTableName + " c").
		Join(booksTableName + " b on b.id = c.book_id").
		LeftJoin(shelvesTableName + " s on s.id = b.shelf_location_id")
}

func (r *repository) CreateBook(ctx context.Context, book model.Book, cover model.Cover) (int64, error) {
	return insertReturningID(ctx, r.db, qb.Insert(booksTableName).
		Columns("batch_key", "title", "author", "genre", "department", "is_using_department",
			"publisher", "publication_year", "isbn", "price", "shelf_location_id", "cover_path", "cover_blob").
		Values(book.BatchKey, book.Title, book.Author, book.Genre, book.Department, book.IsUsingDepartment,
			book.Publisher, book.PublicationYear, book.ISBN, book.Price, book.ShelfLocationID, cover.Path, cover.Blob))
}

func (r *repository) CreateCopy(ctx context.Context, c model.BookCopy) (model.BookCopy, error) {
	item, err := selectOne[model.BookCopy](ctx, r.db, qb.Insert(copiesTableName).
		Columns("book_id", "copy_number", "qr_payload", "status", "price").
		Values(c.BookID, c.CopyNumber, c.QRPayload, string(c.Status), c.Price).
		Suffix("returning "+joinColumns(copyColumns)))
	return item, mapPgError(err)
}

func (r *repository) ListCatalogBooks(ctx context.Context, filter model.BookFilter) ([]model.CatalogBook, int, error) {
	where := sq.And{}
	if filter.Status != "" {
		where = append(where, sq.Eq{"c.status": filter.Status})
	} else {
		where = append(where, sq.NotEq{"c.status": string(model.ItemRemoved)})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		where = append(where, sq.Or{sq.ILike{"b.title": like}, sq.ILike{"b.author": like}, sq.ILike{"b.genre": like}})
	}

	var total int
	query, args, err := qb.Select("count(*)").
		From(copiesTableName + " c").
		Join(booksTableName + " b on b.id = c.book_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	items, err := selectAll[model.CatalogBook](ctx, r.db, catalogFrom().
		Where(where).
		OrderBy("b.title", "b.id", "c.copy_number").
		Limit(uint64(filter.Size)).
		Offset(uint64((filter.Page-1)*filter.Size)))
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return selectOne[model.Book](ctx, r.db, qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id}))
}

func (r *repository) ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error) {
	return selectAll[model.BookCopy](ctx, r.db, qb.Select(copyColumns...).
		From(copiesTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("copy_number"))
}

func (r *repository) UpdateBook(ctx context.Context, id int64, book model.Book) (model.Book, error) {
	var updated model.Book
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		updated, err = selectOne[model.Book](ctx, tx, qb.Update(booksTableName).
			SetMap(map[string]any{
				"title":               book.Title,
				"author":              book.Author,
				"genre":               book.Genre,
				"department":          book.Department,
				"is_using_department": book.IsUsingDepartment,
				"publisher":           book.Publisher,
				"publication_year":    book.PublicationYear,
				"isbn":                book.ISBN,
				"price":               book.Price,
				"shelf_location_id":   book.ShelfLocationID,
			}).
			Where(sq.Eq{"id": id}).
			Suffix("returning "+joinColumns(bookColumns)))
		if err != nil {
			return mapPgError(err)
		}
		// replacement price follows the batch for copies still in circulation
		_, err = exec(ctx, tx, qb.Update(copiesTableName).
			Set("price", book.Price).
			Where(sq.Eq{"book_id": id}).
			Where(sq.NotEq{"status": []string{string(model.ItemLost), string(model.ItemRemoved)}}))
		return err
	})
	return updated, err
}

func (r *repository) SetBookCopiesStatus(ctx context.Context, bookID int64, status model.ItemStatus) (int64, error) {
	return exec(ctx, r.db, qb.Update(copiesTableName).
		Set("status", string(status)).
		Where(sq.Eq{"book_id": bookID}))
}

func (r *repository) SetCopyStatus(ctx context.Context, copyID int64, status model.ItemStatus) (model.BookCopy, error) {
	return selectOne[model.BookCopy](ctx, r.db, qb.Update(copiesTableName).
		Set("status", string(status)).
		Where(sq.Eq{"id": copyID}).
		Suffix("returning "+joinColumns(copyColumns)))
}

func (r *repository) CopyByNumber(ctx context.Context, bookID int64, copyNumber int) (model.CatalogBook, error) {
	return selectOne[model.CatalogBook](ctx, r.db, catalogFrom().
		Where(sq.Eq{"b.id": bookID, "c.copy_number": copyNumber}))
}

func (r *repository) BookCover(ctx context.Context, bookID int64) (model.Cover, error) {
	var c model.Cover
	query, args, err := qb.Select("cover_path", "cover_blob").From(booksTableName).Where(sq.Eq{"id": bookID}).ToSql()
	if err != nil {
		return c, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return c, err
	}
	c, err = pgx.CollectOneRow(rows, func(row pgx.CollectableRow) (model.Cover, error) {
		var cv model.Cover
		err := row.Scan(&cv.Path, &cv.Blob)
		return cv, err
	})
	if err != nil {
		return c, notFound(err)
	}
	return c, nil
}
