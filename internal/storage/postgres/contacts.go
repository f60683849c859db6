package postgres

import (
	"context"
	"log/slog"

	"safezone/internal/domain"
	"safezone/pkg/e"
)

type ContactRepo struct {
	conn
}

// FindContactsByUserID returns every contact in every group owned by userID.
func (p *ContactRepo) FindContactsByUserID(ctx context.Context, userID string) ([]domain.Contact, error) {
	const op = "postgres.Contact.FindByUserID"

	const query = `
		SELECT c.id, c.group_id, g.name, c.name, c.phone
		FROM group_contacts c
		JOIN groups g ON g.id = c.group_id
		WHERE g.user_id = $1
		ORDER BY g.name, c.name
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, query, userID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", userID))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	contacts := make([]domain.Contact, 0, 8)
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.GroupID, &c.GroupName, &c.Name, &c.Phone); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return contacts, nil
}

// CreateGroup and AddContact seed the read side; group management itself
// lives in another service.
func (p *ContactRepo) CreateGroup(ctx context.Context, g *domain.ContactGroup) error {
	const op = "postgres.Contact.CreateGroup"

	const query = `INSERT INTO groups (name, user_id) VALUES ($1, $2) RETURNING id`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	if err := p.pool.QueryRow(ctx, query, g.Name, g.UserID).Scan(&g.ID); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ContactRepo) AddContact(ctx context.Context, c *domain.Contact) error {
	const op = "postgres.Contact.AddContact"

	const query = `
		INSERT INTO group_contacts (group_id, name, phone)
		VALUES ($1, $2, $3)
		RETURNING id, (SELECT name FROM groups WHERE id = $1)
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	if err := p.pool.QueryRow(ctx, query, c.GroupID, c.Name, c.Phone).Scan(&c.ID, &c.GroupName); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}
