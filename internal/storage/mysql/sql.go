package mysql

const upsertReviewsPrefix = "INSERT INTO freelancer_reviews\n" +
	"  (freelancer_id, id, rating, created_at, project_type, project_title, project_value, `comment`, reviewer_name)\n" +
	"VALUES "

// Row placeholders. Undated rows are stamped by the server on first insert only.
const (
	reviewRowDated   = "(?,?,?,?,?,?,?,?,?)"
	reviewRowUndated = "(?,?,?,UTC_TIMESTAMP(6),?,?,?,?,?)"
)

// Re-imports overwrite the row but keep previously known optional values when the new export omits them.
// The dated variant also takes the export's created_at; the undated one keeps the stored date.
const upsertReviewsOnDupDated = " ON DUPLICATE KEY UPDATE\n" +
	"  created_at    = VALUES(created_at),\n" +
	upsertReviewsOnDupCommon

const upsertReviewsOnDupUndated = " ON DUPLICATE KEY UPDATE\n" +
	upsertReviewsOnDupCommon

const upsertReviewsOnDupCommon = "  rating        = VALUES(rating),\n" +
	"  project_type  = COALESCE(VALUES(project_type), freelancer_reviews.project_type),\n" +
	"  project_title = COALESCE(VALUES(project_title), freelancer_reviews.project_title),\n" +
	"  project_value = COALESCE(VALUES(project_value), freelancer_reviews.project_value),\n" +
	"  `comment`     = COALESCE(VALUES(`comment`), freelancer_reviews.`comment`),\n" +
	"  reviewer_name = COALESCE(VALUES(reviewer_name), freelancer_reviews.reviewer_name)\n"

const upsertDisputesPrefix = "INSERT INTO disputes\n" +
	"  (freelancer_id, id, project_title, reason, status, created_at)\n" +
	"VALUES "

const (
	disputeRowDated   = "(?,?,?,?,?,?)"
	disputeRowUndated = "(?,?,?,?,?,UTC_TIMESTAMP(6))"
)

const upsertDisputesOnDupDated = " ON DUPLICATE KEY UPDATE\n" +
	"  created_at    = VALUES(created_at),\n" +
	upsertDisputesOnDupCommon

const upsertDisputesOnDupUndated = " ON DUPLICATE KEY UPDATE\n" +
	upsertDisputesOnDupCommon

const upsertDisputesOnDupCommon = "  project_title = VALUES(project_title),\n" +
	"  reason        = VALUES(reason),\n" +
	"  status        = VALUES(status)\n"

const insertMissSQL = `
INSERT INTO import_misses (freelancer_id, reason, http_status)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE http_status = VALUES(http_status), seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Row order is the engine's default (newest first); the engine re-sorts anyway,
// but a stable DB order keeps cached payloads and ETags deterministic.
const listReviewsSQL = "SELECT id, freelancer_id, rating, created_at, project_type, project_title, project_value, `comment`, reviewer_name\n" +
	"FROM freelancer_reviews\n" +
	"WHERE freelancer_id = ?\n" +
	"ORDER BY created_at DESC, id DESC"

const listDisputesSQL = `
SELECT id, freelancer_id, project_title, reason, status, created_at
FROM disputes
WHERE freelancer_id = ?
ORDER BY created_at DESC, id DESC
`
