// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage() models.LandingPage {
	page := models.NewLandingPage("Promo")
	page.ID = "page-1"
	page.OwnerID = 42
	page.Sections = []models.Section{
		{ID: "s1", Type: models.SectionHero, Content: &models.HeroContent{Title: "Hello"}, Visible: true},
	}
	page.Settings.SEOTitle = "Promo page"
	return page
}

func Test_buildInsertPageQuery(t *testing.T) {
	query, args, err := buildInsertPageQuery(testPage())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO pages"))
	assert.Contains(t, query, "$6")
	assert.Contains(t, query, "RETURNING created_at, updated_at")

	require.Len(t, args, 6)
	assert.Equal(t, "page-1", args[0])
	assert.Equal(t, int64(42), args[1])
	assert.Equal(t, "draft", args[3])
	assert.Contains(t, args[4], `"title":"Hello"`)
	assert.Contains(t, args[5], `"seoTitle":"Promo page"`)
}

func Test_buildInsertPageQuery_NilSectionsStoredAsEmptyArray(t *testing.T) {
	page := testPage()
	page.Sections = nil

	_, args, err := buildInsertPageQuery(page)
	require.NoError(t, err)
	assert.Equal(t, "[]", args[4])
}

func Test_buildSelectPageQuery_SelectsAllColumns(t *testing.T) {
	query, args, err := buildSelectPageQuery("page-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range pageColumns {
		assert.Contains(t, q, col)
	}
	assert.Contains(t, q, "from pages")
	assert.Contains(t, query, "id = $1")
	assert.Equal(t, []any{"page-1"}, args)
}

func Test_buildListPagesQuery_OrdersByUpdatedAt(t *testing.T) {
	query, args, err := buildListPagesQuery(42)
	require.NoError(t, err)

	assert.Contains(t, query, "owner_id = $1")
	assert.Contains(t, query, "ORDER BY updated_at DESC, id")
	assert.Equal(t, []any{int64(42)}, args)
}

func Test_buildUpdatePageQuery_ScopesByOwner(t *testing.T) {
	query, args, err := buildUpdatePageQuery(testPage())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE pages SET"))
	assert.Contains(t, query, "updated_at = now()")
	assert.Contains(t, query, "id = $5")
	assert.Contains(t, query, "owner_id = $6")

	require.Len(t, args, 6)
	assert.Equal(t, "Promo", args[0])
	assert.Equal(t, "page-1", args[4])
	assert.Equal(t, int64(42), args[5])
}

func Test_buildDeletePageQuery(t *testing.T) {
	query, args, err := buildDeletePageQuery("page-1", 42)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "DELETE FROM pages"))
	assert.Equal(t, []any{"page-1", int64(42)}, args)
}
