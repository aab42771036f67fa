// Package store is the persistence layer over gorm. A Store wraps a shared
// connection pool and is safe for concurrent use.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"olivier/internal/models"
	"olivier/internal/utils"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrParentNotFound = errors.New("parent item not found")
)

// MaxListSize 列表接口最多返回的 ID 数量
const MaxListSize = 500

// ListOrder selects how ListItemIDs orders its result.
type ListOrder int

const (
	OrderNew ListOrder = iota // newest first
	OrderTop                  // by rank, see utils.Rank
)

type Store struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateItem 在一个事务内插入条目，并维护作者的 submitted、父条目的 kids
// 以及祖先的 descendants
//
// Rows are locked in one global order: the author first, then the ancestor
// items by ascending id. Two concurrent inserts therefore never wait on each
// other in opposite directions.
func (s *Store) CreateItem(ctx context.Context, item *models.Item) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ancestors []int64
		if item.Category == models.CategoryComment {
			ids, err := s.ancestorIDs(tx, item.Parent)
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: %d", ErrParentNotFound, item.Parent)
			}
			if err != nil {
				return err
			}
			ancestors = ids
		}

		author, err := s.lockUser(tx, item.By)
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("author %d: %w", item.By, gorm.ErrForeignKeyViolated)
		}
		if err != nil {
			return err
		}

		var chain []models.Item
		if len(ancestors) > 0 {
			if err := forUpdate(tx).Where("id IN ?", ancestors).Order("id").Find(&chain).Error; err != nil {
				return fmt.Errorf("failed to lock ancestors of item %d: %w", item.Parent, err)
			}
		}

		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}

		if err := tx.Model(author).Update("submitted", author.Submitted.Append(item.ID)).Error; err != nil {
			return fmt.Errorf("failed to update submitted of user %d: %w", item.By, err)
		}

		if len(chain) > 0 {
			if err := s.attachToParent(tx, chain, item); err != nil {
				return err
			}
		}

		return tx.First(item, item.ID).Error
	})
}

// ancestorIDs walks from parentID up to the root without locking and returns
// the ids in ascending order. parent never changes once an item exists, so
// the chain read here is the chain that gets locked. ErrNotFound means the
// parent itself is missing.
func (s *Store) ancestorIDs(tx *gorm.DB, parentID int64) ([]int64, error) {
	var ids []int64
	seen := map[int64]bool{}
	id := parentID
	for !seen[id] {
		var node models.Item
		err := tx.Select("id", "category", "parent").First(&node, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if id == parentID {
				return nil, ErrNotFound
			}
			break
		}
		if err != nil {
			return nil, err
		}
		seen[id] = true
		ids = append(ids, id)
		if node.Category != models.CategoryComment {
			break
		}
		id = node.Parent
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// attachToParent appends the comment to its parent's kids and bumps
// descendants on every locked ancestor.
func (s *Store) attachToParent(tx *gorm.DB, chain []models.Item, comment *models.Item) error {
	ids := make([]int64, 0, len(chain))
	for i := range chain {
		ids = append(ids, chain[i].ID)
		if chain[i].ID != comment.Parent {
			continue
		}
		parent := &chain[i]
		if err := tx.Model(parent).Update("kids", parent.Kids.Append(comment.ID)).Error; err != nil {
			return fmt.Errorf("failed to update kids of item %d: %w", parent.ID, err)
		}
	}

	err := tx.Model(&models.Item{}).Where("id IN ?", ids).
		Update("descendants", gorm.Expr("descendants + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to update descendants above item %d: %w", comment.ID, err)
	}
	return nil
}

func (s *Store) lockUser(tx *gorm.DB, id int64) (*models.User, error) {
	var user models.User
	if err := forUpdate(tx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// forUpdate adds a row lock where the dialect supports it.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
	return tx
}

// GetItem returns ErrNotFound when no item has the id.
func (s *Store) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// MaxItem returns the item with the highest id.
func (s *Store) MaxItem(ctx context.Context) (*models.Item, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).Order("id DESC").Limit(1).Take(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ListItemIDs 返回指定类型的条目 ID，已删除和 dead 的条目不计入
func (s *Store) ListItemIDs(ctx context.Context, category models.Category, order ListOrder, limit int) ([]int64, error) {
	if limit <= 0 || limit > MaxListSize {
		limit = MaxListSize
	}

	q := s.db.WithContext(ctx).Model(&models.Item{}).
		Where("category = ? AND deleted = ? AND dead = ?", category, false, false)

	if order == OrderNew {
		ids := make([]int64, 0, limit)
		if err := q.Order("id DESC").Limit(limit).Pluck("id", &ids).Error; err != nil {
			return nil, err
		}
		return ids, nil
	}

	// rank the most recent candidates in Go; the rank decays with age so
	// older items rarely make the cut
	var candidates []utils.Ranked
	if err := q.Select("id", "score", "descendants", "time").Order("id DESC").Limit(limit * 2).Scan(&candidates).Error; err != nil {
		return nil, err
	}
	utils.SortByRank(candidates, s.now())
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	ids := make([]int64, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}
	return ids, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if user.Submitted == nil {
			user.Submitted = models.IDList{}
		}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		return tx.First(user, user.ID).Error
	})
}

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) MaxUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Order("id DESC").Limit(1).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpsertUser 更新 name / about（about 为 nil 时保留原值）；用户不存在时以该 id 创建，
// created 表示是否为新建
func (s *Store) UpsertUser(ctx context.Context, id int64, name string, about *string) (user *models.User, created bool, err error) {
	user = &models.User{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.lockUser(tx, id)
		if errors.Is(err, ErrNotFound) {
			created = true
			user.ID = id
			user.Name = name
			user.Submitted = models.IDList{}
			if about != nil {
				user.About = *about
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("failed to insert user: %w", err)
			}
			if err := s.syncUserSequence(tx); err != nil {
				return err
			}
			return tx.First(user, id).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]any{"name": name}
		if about != nil {
			updates["about"] = *about
		}
		if err := tx.Model(existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update user %d: %w", id, err)
		}
		return tx.First(user, id).Error
	})
	if err != nil {
		return nil, false, err
	}
	return user, created, nil
}

// syncUserSequence keeps the id sequence ahead of explicitly chosen ids.
func (s *Store) syncUserSequence(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec(`SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))`).Error
}

// DeleteUser returns the number of rows removed.
func (s *Store) DeleteUser(ctx context.Context, id int64) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}
