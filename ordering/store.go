package ordering

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an item does not exist for the given
	// owner. Foreign-owned items answer the same way so their existence does
	// not leak.
	ErrNotFound = errors.New("item not found")
	// ErrForbidden is returned by Reorder when at least one targeted item
	// belongs to another user.
	ErrForbidden = errors.New("item does not belong to the authenticated user")
)

// Item is the contract every user-owned ordered model satisfies
// (activity areas, links, gallery items).
type Item interface {
	GetID() string
	GetOwnerID() string
	GetPosition() int
	SetPosition(position int)
}

// Move is one position assignment inside a Reorder call.
type Move struct {
	ID       string `json:"id" binding:"required"`
	Position int    `json:"position" binding:"required,min=1"`
}

// ReorderInput is the request body of the reorder endpoints.
type ReorderInput struct {
	Items []Move `json:"items" binding:"required,min=1,dive"`
}

// ValidateMoves rejects malformed reorder payloads before they hit the
// database: every id must be a uuid and appear at most once, and the same
// goes for positions so two items cannot be assigned the same slot.
func ValidateMoves(moves []Move) error {
	seenIDs := make(map[string]bool, len(moves))
	seenPositions := make(map[int]bool, len(moves))
	for _, move := range moves {
		if _, err := uuid.Parse(move.ID); err != nil {
			return errors.New("invalid item id: " + move.ID)
		}
		if seenIDs[move.ID] {
			return errors.New("duplicate item id: " + move.ID)
		}
		if seenPositions[move.Position] {
			return errors.New("duplicate position in reorder request")
		}
		seenIDs[move.ID] = true
		seenPositions[move.Position] = true
	}
	return nil
}

// Store manipulates one user-owned ordered collection backed by a gorm
// model. After every successful mutation the positions of the owner's items
// form a dense 1..N sequence.
type Store[T any, PT interface {
	Item
	*T
}] struct {
	db *gorm.DB
}

func NewStore[T any, PT interface {
	Item
	*T
}](db *gorm.DB) *Store[T, PT] {
	return &Store[T, PT]{db: db}
}

// List returns the owner's items sorted by position.
func (s *Store[T, PT]) List(ownerID string) ([]T, error) {
	var items []T
	err := s.db.Where("user_id = ?", ownerID).Order("position ASC").Find(&items).Error
	return items, err
}

// Find loads one item scoped by owner. A foreign or missing id is ErrNotFound.
func (s *Store[T, PT]) Find(ownerID string, id string) (PT, error) {
	var item T
	err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create appends the item at the end of the owner's collection. The next
// position is computed and the row inserted in the same transaction so two
// concurrent creates cannot claim the same slot.
func (s *Store[T, PT]) Create(item PT) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var model T
		var maxPosition int
		if err := tx.Model(&model).
			Where("user_id = ?", item.GetOwnerID()).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}
		item.SetPosition(maxPosition + 1)
		return tx.Create(item).Error
	})
}

// Save persists payload changes on an item previously loaded with Find.
// Positions are never touched here, only Reorder and Delete move them.
func (s *Store[T, PT]) Save(item PT) error {
	return s.db.Save(item).Error
}

// Reorder applies every position assignment as one transaction, all or
// nothing. Ownership of every targeted id is checked first and a single
// foreign id rejects the whole request with ErrForbidden. The submitted
// positions are trusted to be dense and duplicate-free, the caller builds
// them from its own full list (see the handlers, which reject duplicate ids
// before calling in).
func (s *Store[T, PT]) Reorder(ownerID string, moves []Move) error {
	if len(moves) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var model T
		ids := make([]string, 0, len(moves))
		for _, move := range moves {
			ids = append(ids, move.ID)
		}
		var owned int64
		if err := tx.Model(&model).
			Where("id IN ? AND user_id = ?", ids, ownerID).
			Count(&owned).Error; err != nil {
			return err
		}
		if owned != int64(len(moves)) {
			return ErrForbidden
		}
		for _, move := range moves {
			if err := tx.Model(&model).
				Where("id = ? AND user_id = ?", move.ID, ownerID).
				Update("position", move.Position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the item and compacts the survivors back to a dense 1..N
// sequence keeping their relative order. Runs as one transaction so a failed
// compaction leaves the original collection untouched.
func (s *Store[T, PT]) Delete(ownerID string, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item T
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		var survivors []T
		if err := tx.Where("user_id = ?", ownerID).Order("position ASC").Find(&survivors).Error; err != nil {
			return err
		}
		var model T
		for i := range survivors {
			survivor := PT(&survivors[i])
			if survivor.GetPosition() == i+1 {
				continue
			}
			if err := tx.Model(&model).
				Where("id = ?", survivor.GetID()).
				Update("position", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
