package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/lenslink/lenslink/internal/errors"
	"github.com/lenslink/lenslink/model"
)

const creatorColumns = `id, user_id, name, bio, lat, lng, travel_radius_km, min_project_budget_usd, styles_json, created_at, updated_at`

// CreateCreator inserts a new creator profile, assigning an ID when absent.
func (s *Store) CreateCreator(ctx context.Context, c model.Creator) (model.Creator, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
INSERT INTO creators (`+creatorColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, c.Bio, c.Lat, c.Lng, c.TravelRadiusKm,
		c.MinProjectBudgetUSD, marshalTags(c.Styles), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return model.Creator{}, fmt.Errorf("insert creator: %w", err)
	}
	c.Styles = unmarshalTags(marshalTags(c.Styles))
	return c, nil
}

// GetCreator fetches one creator by ID.
func (s *Store) GetCreator(ctx context.Context, id string) (model.Creator, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+creatorColumns+` FROM creators WHERE id = ?`, id)
	c, err := scanCreator(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Creator{}, apperrors.NewCreatorNotFoundError(id)
	}
	if err != nil {
		return model.Creator{}, fmt.Errorf("get creator: %w", err)
	}
	return c, nil
}

// UpdateCreator overwrites the mutable profile fields.
func (s *Store) UpdateCreator(ctx context.Context, c model.Creator) (model.Creator, error) {
	c.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
UPDATE creators
SET name = ?, bio = ?, lat = ?, lng = ?, travel_radius_km = ?,
    min_project_budget_usd = ?, styles_json = ?, updated_at = ?
WHERE id = ?`,
		c.Name, c.Bio, c.Lat, c.Lng, c.TravelRadiusKm,
		c.MinProjectBudgetUSD, marshalTags(c.Styles), c.UpdatedAt, c.ID,
	)
	if err != nil {
		return model.Creator{}, fmt.Errorf("update creator: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Creator{}, apperrors.NewCreatorNotFoundError(c.ID)
	}
	return s.GetCreator(ctx, c.ID)
}

// DeleteCreator removes a creator and, via cascades, its attached records.
func (s *Store) DeleteCreator(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM creators WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete creator: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.NewCreatorNotFoundError(id)
	}
	return nil
}

// ListCreators returns a page of creators (ID order) plus the total count.
func (s *Store) ListCreators(ctx context.Context, limit, offset int) ([]model.Creator, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM creators`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count creators: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+creatorColumns+` FROM creators ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list creators: %w", err)
	}
	defer rows.Close()

	creators := make([]model.Creator, 0, limit)
	for rows.Next() {
		c, err := scanCreator(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan creator: %w", err)
		}
		creators = append(creators, c)
	}
	return creators, total, rows.Err()
}

// AddPortfolioImage appends an image to a creator's portfolio.
func (s *Store) AddPortfolioImage(ctx context.Context, img model.PortfolioImage) (model.PortfolioImage, error) {
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	img.CreatedAt = time.Now().UTC()

	if _, err := s.GetCreator(ctx, img.CreatorID); err != nil {
		return model.PortfolioImage{}, err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_images (id, creator_id, url, caption, tags_json, position, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		img.ID, img.CreatorID, img.URL, img.Caption, marshalTags(img.Tags), img.Position, img.CreatedAt,
	)
	if err != nil {
		return model.PortfolioImage{}, fmt.Errorf("insert portfolio image: %w", err)
	}
	img.Tags = unmarshalTags(marshalTags(img.Tags))
	return img, nil
}

// ListPortfolioImages returns a creator's portfolio in position order.
func (s *Store) ListPortfolioImages(ctx context.Context, creatorID string) ([]model.PortfolioImage, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, creator_id, url, caption, tags_json, position, created_at
FROM portfolio_images WHERE creator_id = ? ORDER BY position, created_at`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list portfolio images: %w", err)
	}
	defer rows.Close()

	images := make([]model.PortfolioImage, 0)
	for rows.Next() {
		var img model.PortfolioImage
		var tagsJSON string
		if err := rows.Scan(&img.ID, &img.CreatorID, &img.URL, &img.Caption, &tagsJSON, &img.Position, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan portfolio image: %w", err)
		}
		img.Tags = unmarshalTags(tagsJSON)
		images = append(images, img)
	}
	return images, rows.Err()
}

// AddProject publishes a project on a creator profile.
func (s *Store) AddProject(ctx context.Context, p model.Project) (model.Project, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC()

	if _, err := s.GetCreator(ctx, p.CreatorID); err != nil {
		return model.Project{}, err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO projects (id, creator_id, title, description, tags_json, cover_url, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.CreatorID, p.Title, p.Description, marshalTags(p.Tags), p.CoverURL, p.CreatedAt,
	)
	if err != nil {
		return model.Project{}, fmt.Errorf("insert project: %w", err)
	}
	p.Tags = unmarshalTags(marshalTags(p.Tags))
	return p, nil
}

// ListProjects returns a creator's projects, newest first.
func (s *Store) ListProjects(ctx context.Context, creatorID string) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, creator_id, title, description, tags_json, cover_url, created_at
FROM projects WHERE creator_id = ? ORDER BY created_at DESC`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		var p model.Project
		var tagsJSON string
		if err := rows.Scan(&p.ID, &p.CreatorID, &p.Title, &p.Description, &tagsJSON, &p.CoverURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Tags = unmarshalTags(tagsJSON)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// AddAvailability records a bookable window for a creator.
func (s *Store) AddAvailability(ctx context.Context, b model.AvailabilityBlock) (model.AvailabilityBlock, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if _, err := s.GetCreator(ctx, b.CreatorID); err != nil {
		return model.AvailabilityBlock{}, err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO availability_blocks (id, creator_id, start_at, end_at)
VALUES (?, ?, ?, ?)`,
		b.ID, b.CreatorID, b.Start.UTC(), b.End.UTC(),
	)
	if err != nil {
		return model.AvailabilityBlock{}, fmt.Errorf("insert availability: %w", err)
	}
	return b, nil
}

// ListAvailability returns a creator's availability blocks in start order.
func (s *Store) ListAvailability(ctx context.Context, creatorID string) ([]model.AvailabilityBlock, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, creator_id, start_at, end_at
FROM availability_blocks WHERE creator_id = ? ORDER BY start_at`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	defer rows.Close()

	blocks := make([]model.AvailabilityBlock, 0)
	for rows.Next() {
		var b model.AvailabilityBlock
		if err := rows.Scan(&b.ID, &b.CreatorID, &b.Start, &b.End); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

// ListCandidates loads every creator with portfolio, projects, and
// availability attached, ready for scoring. Pool sizes are tens to low
// hundreds, so three attachment queries per creator are acceptable; a
// hotter path would batch them.
func (s *Store) ListCandidates(ctx context.Context) ([]model.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+creatorColumns+` FROM creators ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	creators := make([]model.Creator, 0)
	for rows.Next() {
		c, err := scanCreator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		creators = append(creators, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	candidates := make([]model.Candidate, 0, len(creators))
	for _, c := range creators {
		images, err := s.ListPortfolioImages(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		projects, err := s.ListProjects(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		availability, err := s.ListAvailability(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, model.Candidate{
			Creator:         c,
			PortfolioImages: images,
			Projects:        projects,
			Availability:    availability,
		})
	}
	return candidates, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCreator(row scanner) (model.Creator, error) {
	var c model.Creator
	var stylesJSON string
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Bio, &c.Lat, &c.Lng,
		&c.TravelRadiusKm, &c.MinProjectBudgetUSD, &stylesJSON, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return model.Creator{}, err
	}
	c.Styles = unmarshalTags(stylesJSON)
	return c, nil
}
