package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-library-reserve/models"
)

const (
	usersTable            = "users"
	userProfilesTable     = "user_profiles"
	reservationsTable     = "reservations"
	booksTable            = "books"
	bookReservationsTable = "books_reservations"
)

var (
	userColumns = []string{
		"id", "user_name", "email", "password_hash", "role", "status", "created_at", "updated_at",
	}
	userProfileColumns = []string{
		"id", "user_id", "first_name", "last_name", "email", "identification", "address",
		"phone_number", "birth_date", "department", "sector", "created_at", "updated_at",
	}
	reservationColumns = []string{
		"id", "event_name", "user_id", "start_time", "end_time", "created_at", "updated_at",
	}
	bookColumns = []string{
		"id", "title", "author", "book_gender", "summary", "availability", "created_at", "updated_at",
	}
	bookReservationColumns = []string{
		"id", "book_id", "user_id", "reserved_at", "returned_at",
	}
)

// users

func insertUserBase(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return b.Insert(usersTable).
		Columns("user_name", "email", "password_hash", "role", "status", "created_at", "updated_at").
		Values(user.UserName, user.Email, user.PasswordHash, string(user.Role), string(user.Status), user.CreatedAt, user.UpdatedAt)
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return insertUserBase(b, user).Suffix("RETURNING id")
}

// buildInsertUserIfAbsentQuery returns no row when the email is taken, which
// makes concurrent bootstraps race-free without an explicit lock.
func buildInsertUserIfAbsentQuery(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return insertUserBase(b, user).Suffix("ON CONFLICT (email) DO NOTHING RETURNING id")
}

func buildSelectUserQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).From(usersTable)
}

func buildListUsersQuery(b sq.StatementBuilderType, filter models.UserFilter) sq.SelectBuilder {
	query := buildSelectUserQuery(b)
	if filter.Role != nil {
		query = query.Where(sq.Eq{"role": string(*filter.Role)})
	}
	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": string(*filter.Status)})
	}
	return paginate(query.OrderBy("id"), filter.Pagination)
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) sq.UpdateBuilder {
	return b.Update(usersTable).
		Set("user_name", user.UserName).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("role", string(user.Role)).
		Set("status", string(user.Status)).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID})
}

// user profiles

func buildInsertUserProfileQuery(b sq.StatementBuilderType, p models.UserProfile) sq.InsertBuilder {
	return b.Insert(userProfilesTable).
		Columns("user_id", "first_name", "last_name", "email", "identification", "address",
			"phone_number", "birth_date", "department", "sector", "created_at", "updated_at").
		Values(p.UserID, p.FirstName, p.LastName, p.Email, p.Identification, p.Address,
			p.PhoneNumber, p.BirthDate, p.Department, p.Sector, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING id")
}

func buildSelectUserProfileQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userProfileColumns...).From(userProfilesTable)
}

func buildUpdateUserProfileQuery(b sq.StatementBuilderType, p models.UserProfile) sq.UpdateBuilder {
	return b.Update(userProfilesTable).
		Set("first_name", p.FirstName).
		Set("last_name", p.LastName).
		Set("email", p.Email).
		Set("identification", p.Identification).
		Set("address", p.Address).
		Set("phone_number", p.PhoneNumber).
		Set("birth_date", p.BirthDate).
		Set("department", p.Department).
		Set("sector", p.Sector).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID})
}

// reservations

func buildInsertReservationQuery(b sq.StatementBuilderType, r models.Reservation) sq.InsertBuilder {
	return b.Insert(reservationsTable).
		Columns("event_name", "user_id", "start_time", "end_time", "created_at", "updated_at").
		Values(r.EventName, r.UserID, r.StartTime, r.EndTime, r.CreatedAt, r.UpdatedAt).
		Suffix("RETURNING id")
}

func buildSelectReservationQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(reservationColumns...).From(reservationsTable)
}

// buildListReservationsQuery keeps the reservations overlapping the
// half-open window [From, To). Either bound may be omitted.
func buildListReservationsQuery(b sq.StatementBuilderType, filter models.ReservationFilter) sq.SelectBuilder {
	query := buildSelectReservationQuery(b)
	if filter.UserID != nil {
		query = query.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.To != nil {
		query = query.Where(sq.Lt{"start_time": *filter.To})
	}
	if filter.From != nil {
		query = query.Where(sq.Gt{"end_time": *filter.From})
	}
	return paginate(query.OrderBy("start_time", "id"), filter.Pagination)
}

func buildUpdateReservationQuery(b sq.StatementBuilderType, r models.Reservation) sq.UpdateBuilder {
	return b.Update(reservationsTable).
		Set("event_name", r.EventName).
		Set("user_id", r.UserID).
		Set("start_time", r.StartTime).
		Set("end_time", r.EndTime).
		Set("updated_at", r.UpdatedAt).
		Where(sq.Eq{"id": r.ID})
}

// books

func buildInsertBookQuery(b sq.StatementBuilderType, book models.Book) sq.InsertBuilder {
	return b.Insert(booksTable).
		Columns("title", "author", "book_gender", "summary", "availability", "created_at", "updated_at").
		Values(book.Title, book.Author, string(book.BookGender), book.Summary, book.Availability, book.CreatedAt, book.UpdatedAt).
		Suffix("RETURNING id")
}

func buildSelectBookQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(bookColumns...).From(booksTable)
}

func buildListBooksQuery(b sq.StatementBuilderType, filter models.BookFilter) sq.SelectBuilder {
	query := buildSelectBookQuery(b)
	if filter.Gender != nil {
		query = query.Where(sq.Eq{"book_gender": string(*filter.Gender)})
	}
	if filter.Available != nil {
		query = query.Where(sq.Eq{"availability": *filter.Available})
	}
	if filter.TitleContains != "" {
		query = query.Where(sq.Like{"LOWER(title)": "%" + strings.ToLower(filter.TitleContains) + "%"})
	}
	return paginate(query.OrderBy("title", "id"), filter.Pagination)
}

func buildUpdateBookQuery(b sq.StatementBuilderType, book models.Book) sq.UpdateBuilder {
	return b.Update(booksTable).
		Set("title", book.Title).
		Set("author", book.Author).
		Set("book_gender", string(book.BookGender)).
		Set("summary", book.Summary).
		Set("availability", book.Availability).
		Set("updated_at", book.UpdatedAt).
		Where(sq.Eq{"id": book.ID})
}

// book reservations

func buildInsertBookReservationQuery(b sq.StatementBuilderType, r models.BookReservation) sq.InsertBuilder {
	return b.Insert(bookReservationsTable).
		Columns("book_id", "user_id", "reserved_at", "returned_at").
		Values(r.BookID, r.UserID, r.ReservedAt, r.ReturnedAt).
		Suffix("RETURNING id")
}

func buildSelectBookReservationQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(bookReservationColumns...).From(bookReservationsTable)
}

func buildListBookReservationsQuery(b sq.StatementBuilderType, filter models.BookReservationFilter) sq.SelectBuilder {
	query := buildSelectBookReservationQuery(b)
	if filter.UserID != nil {
		query = query.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.BookID != nil {
		query = query.Where(sq.Eq{"book_id": *filter.BookID})
	}
	if filter.ActiveOnly {
		query = query.Where(sq.Eq{"returned_at": nil})
	}
	return paginate(query.OrderBy("reserved_at DESC", "id"), filter.Pagination)
}

// buildMarkReturnedQuery only touches loans that are still open.
func buildMarkReturnedQuery(b sq.StatementBuilderType, id int64, at time.Time) sq.UpdateBuilder {
	return b.Update(bookReservationsTable).
		Set("returned_at", at).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"returned_at": nil})
}

// shared

func buildDeleteByIDQuery(b sq.StatementBuilderType, table string, id int64) sq.DeleteBuilder {
	return b.Delete(table).Where(sq.Eq{"id": id})
}

func buildTableExistsQuery(b sq.StatementBuilderType, dialect Dialect, table string) sq.SelectBuilder {
	var query sq.SelectBuilder
	switch dialect {
	case DialectPostgres:
		query = b.Select("1").
			From("information_schema.tables").
			Where("table_schema = current_schema()").
			Where(sq.Eq{"table_name": table})
	default:
		query = b.Select("1").
			From("sqlite_master").
			Where(sq.Eq{"type": "table"}).
			Where(sq.Eq{"name": table})
	}
	return query.Prefix("SELECT EXISTS (").Suffix(")")
}

func paginate(query sq.SelectBuilder, p models.Pagination) sq.SelectBuilder {
	if p.Limit > 0 {
		query = query.Limit(p.Limit)
	}
	if p.Offset > 0 {
		query = query.Offset(p.Offset)
	}
	return query
}
