package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/campusreg/lostfound/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(college_id,\s*email,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*is_admin\s*$`

	rows := sqlmock.NewRows([]string{"id", "is_admin"}).AddRow(int64(42), false)
	mock.ExpectQuery(q).
		WithArgs("S1001", "a@x.edu", "hash").
		WillReturnRows(rows)

	u := &User{CollegeID: "S1001", Email: "a@x.edu", PasswordHash: "hash"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.IsAdmin {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WithArgs("S1001", "a@x.edu", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_college_id_key"})

	_, err := repo.Create(context.Background(), &User{CollegeID: "S1001", Email: "a@x.edu", PasswordHash: "hash"})
	if !errors.Is(err, common.ErrDuplicateUser) {
		t.Fatalf("want common.ErrDuplicateUser, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WithArgs("S1001", "a@x.edu", "hash").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &User{CollegeID: "S1001", Email: "a@x.edu", PasswordHash: "hash"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByCollegeID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*college_id,\s*email,\s*password_hash,\s*is_admin\s+FROM\s+users\s+WHERE\s+college_id\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "college_id", "email", "password_hash", "is_admin"}).
		AddRow(int64(1), "S1001", "a@x.edu", "hash", true)
	mock.ExpectQuery(q).
		WithArgs("S1001").
		WillReturnRows(rows)

	got, err := repo.GetByCollegeID(context.Background(), "S1001")
	if err != nil {
		t.Fatalf("GetByCollegeID error: %v", err)
	}
	if got.ID != 1 || got.Email != "a@x.edu" || !got.IsAdmin {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByCollegeID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*college_id`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByCollegeID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+EXISTS\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+college_id\s*=\s*\$1\s+OR\s+email\s*=\s*\$2\)\s*$`

	mock.ExpectQuery(q).
		WithArgs("S1001", "a@x.edu").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := repo.Exists(context.Background(), "S1001", "a@x.edu")
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if !got {
		t.Fatalf("expected exists=true")
	}
}

func TestListAll_OrderedByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*college_id,\s*email,\s*is_admin\s+FROM\s+users\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id", "college_id", "email", "is_admin"}).
		AddRow(int64(1), "S1", "a@x.edu", true).
		AddRow(int64(2), "S2", "b@x.edu", false)
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].CollegeID != "S2" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}
