// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertDraft = `
		INSERT INTO drafts (draft_key, page_id, owner_id, title, body, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (draft_key) DO UPDATE SET
			page_id  = excluded.page_id,
			owner_id = excluded.owner_id,
			title    = excluded.title,
			body     = excluded.body,
			saved_at = excluded.saved_at;`

	getDraft = `
		SELECT draft_key, owner_id, body, saved_at
		FROM drafts
		WHERE draft_key = ?;`

	listDrafts = `
		SELECT draft_key, owner_id, body, saved_at
		FROM drafts
		WHERE owner_id = ?
		ORDER BY saved_at DESC, draft_key;`

	deleteDraft = `DELETE FROM drafts WHERE draft_key = ?;`
)
