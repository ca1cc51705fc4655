package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"

	"floripa_guide/internal/domain"
)

const errDupEntry = 1062

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func ptrStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func isDuplicate(err error) bool {
	var me *gomysql.MySQLError
	return errors.As(err, &me) && me.Number == errDupEntry
}

// NormalizeDSN forces parseTime and UTC on dsn. The repository scans DATETIME
// columns into time.Time, which the driver only supports with parseTime on.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := gomysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// CreatePartner writes user, partner and subscription in one transaction.
func (r *Repo) CreatePartner(ctx context.Context, reg domain.Registration) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	u := reg.User
	if _, err = tx.ExecContext(ctx, insertUserSQL,
		u.ID, u.Name, strings.ToLower(u.Email), u.PasswordHash, string(u.Role), u.CreatedAt,
	); err != nil {
		if isDuplicate(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	p := reg.Partner
	if _, err = tx.ExecContext(ctx, insertPartnerSQL,
		p.ID, p.UserID, p.BusinessName, p.Type, p.City, p.WhatsApp,
		valStr(p.Instagram), valStr(p.Website), valStr(p.Description), string(p.Status),
	); err != nil {
		return fmt.Errorf("insert partner: %w", err)
	}

	if err = upsertSubscription(ctx, tx, reg.Subscription); err != nil {
		return err
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertSubscription(ctx context.Context, ex execer, s domain.Subscription) error {
	var end any
	if s.EndDate != nil {
		end = *s.EndDate
	}
	if _, err := ex.ExecContext(ctx, upsertSubscriptionSQL,
		s.ID, s.UserID, string(s.Plan), string(s.Status), s.StartDate, end,
	); err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}
	return nil
}

func (r *Repo) UpsertSubscription(ctx context.Context, s domain.Subscription) error {
	return upsertSubscription(ctx, r.db, s)
}

func (r *Repo) scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	return u, nil
}

func (r *Repo) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, userByEmailSQL, strings.ToLower(email)))
}

func (r *Repo) UserByID(ctx context.Context, id string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, userByIDSQL, id))
}

func (r *Repo) PartnerByUser(ctx context.Context, userID string) (domain.Partner, error) {
	var p domain.Partner
	var status string
	var ig, web, desc sql.NullString
	err := r.db.QueryRowContext(ctx, partnerByUserSQL, userID).Scan(
		&p.ID, &p.UserID, &p.BusinessName, &p.Type, &p.City, &p.WhatsApp,
		&ig, &web, &desc, &status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Partner{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Partner{}, err
	}
	p.Instagram, p.Website, p.Description = ptrStr(ig), ptrStr(web), ptrStr(desc)
	p.Status = domain.PartnerStatus(status)
	return p, nil
}

func (r *Repo) SubscriptionByUser(ctx context.Context, userID string) (domain.Subscription, error) {
	var s domain.Subscription
	var plan, status string
	var end sql.NullTime
	err := r.db.QueryRowContext(ctx, subscriptionByUserSQL, userID).Scan(
		&s.ID, &s.UserID, &plan, &status, &s.StartDate, &end,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Subscription{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Subscription{}, err
	}
	s.Plan, s.Status = domain.Plan(plan), domain.SubscriptionStatus(status)
	if end.Valid {
		t := end.Time
		s.EndDate = &t
	}
	return s, nil
}
