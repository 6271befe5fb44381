package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	userColumns = []string{"id", "email", "password_hash", "created_at"}
	itemColumns = []string{
		"id",
		"owner_id",
		"name",
		"description",
		"category",
		"priority",
		"done",
		"created_at",
		"updated_at",
	}
)

// priorityRank orders high before medium before low.
const priorityRank = "CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END"

var itemOrderings = map[models.SortOrder][]string{
	models.SortCreatedDesc: {"created_at DESC", "id DESC"},
	models.SortCreatedAsc:  {"created_at ASC", "id ASC"},
	models.SortNameAsc:     {"name ASC", "created_at ASC"},
	models.SortNameDesc:    {"name DESC", "created_at ASC"},
	models.SortPriority:    {priorityRank, "created_at ASC", "id ASC"},
}

// buildInsertUserQuery inserts a user and silently skips a taken email.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("ON CONFLICT (email) DO NOTHING").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

// buildListItemsQuery selects the owner's items. Optional filters are
// AND-combined; search matches name or description case-insensitively.
func buildListItemsQuery(b sq.StatementBuilderType, filter models.ItemFilter) (string, []any, error) {
	query := b.Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(sq.Eq{"owner_id": filter.OwnerID})

	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": string(filter.Category)})
	}

	if filter.Priority != "" {
		query = query.Where(sq.Eq{"priority": string(filter.Priority)})
	}

	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where(sq.Or{
			sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(description) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	ordering, ok := itemOrderings[filter.Sort]
	if !ok {
		ordering = itemOrderings[models.SortCreatedDesc]
	}

	return query.OrderBy(ordering...).ToSql()
}

func buildInsertItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return b.Insert(item.TableName()).
		Columns(itemColumns...).
		Values(
			item.ID,
			item.OwnerID,
			item.Name,
			item.Description,
			string(item.Category),
			string(item.Priority),
			item.Done,
			item.CreatedAt,
			item.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
}

// buildUpdateItemQuery sets only the fields present in update plus
// updated_at, and only on a row owned by update.OwnerID.
func buildUpdateItemQuery(b sq.StatementBuilderType, update models.ItemUpdate) (string, []any, error) {
	query := b.Update(models.Item{}.TableName())

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Category != nil {
		query = query.Set("category", string(*update.Category))
	}
	if update.Priority != nil {
		query = query.Set("priority", string(*update.Priority))
	}
	if update.Done != nil {
		query = query.Set("done", *update.Done)
	}

	return query.Set("updated_at", update.UpdatedAt).
		Where(sq.Eq{"id": update.ID, "owner_id": update.OwnerID}).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
}

func buildDeleteItemQuery(b sq.StatementBuilderType, ownerID, itemID string) (string, []any, error) {
	return b.Delete(models.Item{}.TableName()).
		Where(sq.Eq{"id": itemID, "owner_id": ownerID}).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
