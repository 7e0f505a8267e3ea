package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-landing-builder/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`
)

const pagesTable = "pages"

var pageColumns = []string{
	"id",
	"owner_id",
	"title",
	"status",
	"sections",
	"settings",
	"created_at",
	"updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// encodePageBody serializes the JSONB columns. A nil section list is stored
// as an empty array.
func encodePageBody(page models.LandingPage) (sections, settings string, err error) {
	list := page.Sections
	if list == nil {
		list = []models.Section{}
	}

	sectionsJSON, err := json.Marshal(list)
	if err != nil {
		return "", "", fmt.Errorf("%w: sections: %w", ErrEncodingPage, err)
	}
	settingsJSON, err := json.Marshal(page.Settings)
	if err != nil {
		return "", "", fmt.Errorf("%w: settings: %w", ErrEncodingPage, err)
	}

	return string(sectionsJSON), string(settingsJSON), nil
}

func buildInsertPageQuery(page models.LandingPage) (string, []any, error) {
	sections, settings, err := encodePageBody(page)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(pagesTable).
		Columns("id", "owner_id", "title", "status", "sections", "settings").
		Values(page.ID, page.OwnerID, page.Title, string(page.Status), sections, settings).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildSelectPageQuery(id string) (string, []any, error) {
	return psql.Select(pageColumns...).
		From(pagesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListPagesQuery(ownerID int64) (string, []any, error) {
	return psql.Select(pageColumns...).
		From(pagesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC", "id").
		ToSql()
}

func buildUpdatePageQuery(page models.LandingPage) (string, []any, error) {
	sections, settings, err := encodePageBody(page)
	if err != nil {
		return "", nil, err
	}

	return psql.Update(pagesTable).
		Set("title", page.Title).
		Set("status", string(page.Status)).
		Set("sections", sections).
		Set("settings", settings).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": page.ID, "owner_id": page.OwnerID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildDeletePageQuery(id string, ownerID int64) (string, []any, error) {
	return psql.Delete(pagesTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}
