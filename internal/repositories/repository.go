package repositories

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"sitecms_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

var (
	// ErrDuplicate is returned when the Record Store rejects a row for
	// violating a unique index.
	ErrDuplicate = errors.New("duplicate key")
	// ErrUnknownField is returned for patch keys that are not columns of the entity.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnsupported is returned when an operation needs a capability the
	// repository was not configured with.
	ErrUnsupported = errors.New("operation not supported for this entity")
)

// DefaultFeaturedLimit bounds GetFeatured when the caller passes no limit.
const DefaultFeaturedLimit = 3

// Options describes the table-specific capabilities of a Repository.
// Column names are trusted configuration, never request input.
type Options struct {
	// DefaultOrder is applied to every list; "id ASC" is always appended.
	DefaultOrder   []string
	SlugColumn     string
	CategoryColumn string
	SearchColumns  []string
	OrderColumn    string
	ActiveColumn   string
	FeaturedColumn string
}

// Patch is a sparse update keyed by column (or json) name. Nil values and
// nil pointers mean "leave unchanged".
type Patch map[string]any

// Repository implements the operations shared by every content table.
// Like the other repositories it holds no connection; the *gorm.DB of the
// current request is passed to each call.
type Repository[T models.Entity] struct {
	opts Options
}

func New[T models.Entity](opts Options) *Repository[T] {
	return &Repository[T]{opts: opts}
}

func (r *Repository[T]) Options() Options {
	return r.opts
}

func (r *Repository[T]) ordered(db *gorm.DB) *gorm.DB {
	for _, o := range r.opts.DefaultOrder {
		db = db.Order(o)
	}
	return db.Order("id ASC")
}

func (r *Repository[T]) findOne(query *gorm.DB) (*T, error) {
	var entity T
	err := query.Take(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *Repository[T]) findMany(query *gorm.DB) ([]T, error) {
	items := make([]T, 0)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Get returns the entity with the given id, or nil when there is none.
func (r *Repository[T]) Get(db *gorm.DB, id uint) (*T, error) {
	return r.findOne(db.Where("id = ?", id))
}

func (r *Repository[T]) GetBySlug(db *gorm.DB, slug string) (*T, error) {
	if r.opts.SlugColumn == "" {
		return nil, ErrUnsupported
	}
	return r.GetBy(db, r.opts.SlugColumn, slug)
}

// GetBy returns the first entity (in default order) whose column equals value.
func (r *Repository[T]) GetBy(db *gorm.DB, column string, value any) (*T, error) {
	return r.findOne(r.ordered(db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})))
}

// List returns one page in default order. skip and limit are applied as given.
func (r *Repository[T]) List(db *gorm.DB, skip, limit int) ([]T, error) {
	return r.findMany(r.ordered(db).Offset(skip).Limit(limit))
}

// All returns every row in default order.
func (r *Repository[T]) All(db *gorm.DB) ([]T, error) {
	return r.findMany(r.ordered(db))
}

// Filter returns every row whose column equals value, in default order.
func (r *Repository[T]) Filter(db *gorm.DB, column string, value any) ([]T, error) {
	return r.findMany(r.ordered(db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})))
}

func (r *Repository[T]) GetByCategory(db *gorm.DB, category string) ([]T, error) {
	if r.opts.CategoryColumn == "" {
		return nil, ErrUnsupported
	}
	return r.Filter(db, r.opts.CategoryColumn, category)
}

// Search matches q as a case-insensitive substring of any search column.
func (r *Repository[T]) Search(db *gorm.DB, q string) ([]T, error) {
	if len(r.opts.SearchColumns) == 0 {
		return nil, ErrUnsupported
	}

	pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
	conds := make([]string, 0, len(r.opts.SearchColumns))
	args := make([]any, 0, len(r.opts.SearchColumns))
	for _, col := range r.opts.SearchColumns {
		conds = append(conds, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col))
		args = append(args, pattern)
	}

	return r.findMany(r.ordered(db.Where("("+strings.Join(conds, " OR ")+")", args...)))
}

// GetActive lists active rows in display order.
func (r *Repository[T]) GetActive(db *gorm.DB) ([]T, error) {
	if r.opts.ActiveColumn == "" {
		return nil, ErrUnsupported
	}
	return r.Filter(db, r.opts.ActiveColumn, true)
}

// GetFeatured lists featured (and, when the table has the flag, active) rows.
func (r *Repository[T]) GetFeatured(db *gorm.DB, limit int) ([]T, error) {
	if r.opts.FeaturedColumn == "" {
		return nil, ErrUnsupported
	}
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	query := db.Where(clause.Eq{Column: clause.Column{Name: r.opts.FeaturedColumn}, Value: true})
	if r.opts.ActiveColumn != "" {
		query = query.Where(clause.Eq{Column: clause.Column{Name: r.opts.ActiveColumn}, Value: true})
	}
	return r.findMany(r.ordered(query).Limit(limit))
}

// Create inserts entity and returns the row as stored.
func (r *Repository[T]) Create(db *gorm.DB, entity *T) (*T, error) {
	if err := db.Create(entity).Error; err != nil {
		return nil, translate(err)
	}
	return r.Get(db, (*entity).GetID())
}

// Update applies patch to the row with the given id and returns the row as
// stored afterwards, or nil when the row does not exist.
func (r *Repository[T]) Update(db *gorm.DB, id uint, patch Patch) (*T, error) {
	values, err := r.columns(db, patch)
	if err != nil {
		return nil, err
	}

	existing, err := r.Get(db, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(values) == 0 {
		return existing, nil
	}

	values["updated_at"] = time.Now()
	if err := db.Model(new(T)).Where("id = ?", id).Updates(values).Error; err != nil {
		return nil, translate(err)
	}
	return r.Get(db, id)
}

// Delete removes the row and returns what it held, or nil when absent.
func (r *Repository[T]) Delete(db *gorm.DB, id uint) (*T, error) {
	existing, err := r.Get(db, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if err := db.Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Toggle flips a boolean column in place.
func (r *Repository[T]) Toggle(db *gorm.DB, id uint, column string) (*T, error) {
	existing, err := r.Get(db, id)
	if err != nil || existing == nil {
		return nil, err
	}

	col := clause.Column{Name: column}
	err = db.Model(new(T)).Where("id = ?", id).Updates(map[string]any{
		column:       gorm.Expr("NOT ?", col),
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return r.Get(db, id)
}

func (r *Repository[T]) ToggleActive(db *gorm.DB, id uint) (*T, error) {
	if r.opts.ActiveColumn == "" {
		return nil, ErrUnsupported
	}
	return r.Toggle(db, id, r.opts.ActiveColumn)
}

func (r *Repository[T]) ToggleFeatured(db *gorm.DB, id uint) (*T, error) {
	if r.opts.FeaturedColumn == "" {
		return nil, ErrUnsupported
	}
	return r.Toggle(db, id, r.opts.FeaturedColumn)
}

// Reorder sets the order column to exactly n. Other rows are not renumbered.
func (r *Repository[T]) Reorder(db *gorm.DB, id uint, n int) (*T, error) {
	if r.opts.OrderColumn == "" {
		return nil, ErrUnsupported
	}
	return r.Update(db, id, Patch{r.opts.OrderColumn: n})
}

// columns resolves patch keys against the entity schema, drops absent
// values and converts values to the column's Go type where needed.
func (r *Repository[T]) columns(db *gorm.DB, patch Patch) (map[string]any, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		return nil, err
	}

	values := make(map[string]any, len(patch))
	for key, value := range patch {
		value, ok := present(value)
		if !ok {
			continue
		}

		field := stmt.Schema.LookUpField(key)
		if field == nil || field.DBName == "" {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, key)
		}
		if protected(field) {
			continue
		}

		values[field.DBName] = convert(value, field)
	}
	return values, nil
}

func protected(field *schema.Field) bool {
	return field.PrimaryKey || field.DBName == "created_at" || field.DBName == "updated_at"
}

func present(value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		return rv.Elem().Interface(), true
	}
	return value, true
}

func convert(value any, field *schema.Field) any {
	rv := reflect.ValueOf(value)
	target := field.FieldType
	if target.Kind() == reflect.Pointer {
		target = target.Elem()
	}
	if rv.Type() != target && rv.Type().ConvertibleTo(target) && rv.Kind() == target.Kind() {
		return rv.Convert(target).Interface()
	}
	return value
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
