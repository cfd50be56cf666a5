package grocy

import (
	"context"
	"time"

	"github.com/grocyhq/go-grocy/api"
)

// MealPlanSection represents a named section of the daily meal plan.
type MealPlanSection struct {
	ID               int
	Name             string
	SortNumber       *int
	CreatedTimestamp time.Time
}

// NewMealPlanSectionFromResponse builds a MealPlanSection from its wire
// representation.
func NewMealPlanSectionFromResponse(resp *api.MealPlanSectionResponse) *MealPlanSection {
	return &MealPlanSection{
		ID:               int(resp.ID),
		Name:             resp.Name.String,
		SortNumber:       resp.SortNumber.Pointer(),
		CreatedTimestamp: resp.RowCreatedTimestamp.Time,
	}
}

// MealPlanItem represents one meal plan entry. An entry points at a recipe,
// a product, or just a note; FetchDetails resolves the recipe and section
// references.
type MealPlanItem struct {
	ID               int
	Day              time.Time
	Type             string
	Note             string
	RecipeID         *int
	RecipeServings   *int
	ProductID        *int
	ProductAmount    *float64
	ProductQuID      *int
	SectionID        *int
	CreatedTimestamp time.Time
	Userfields       api.Userfields

	Recipe  *RecipeItem
	Section *MealPlanSection
}

// NewMealPlanItemFromResponse builds a MealPlanItem from its wire
// representation.
func NewMealPlanItemFromResponse(resp *api.MealPlanEntryResponse) *MealPlanItem {
	return &MealPlanItem{
		ID:               int(resp.ID),
		Day:              resp.Day.Time,
		Type:             resp.Type,
		Note:             resp.Note.String,
		RecipeID:         resp.RecipeID.Pointer(),
		RecipeServings:   resp.RecipeServings.Pointer(),
		ProductID:        resp.ProductID.Pointer(),
		ProductAmount:    resp.ProductAmount.Pointer(),
		ProductQuID:      resp.ProductQuID.Pointer(),
		SectionID:        resp.SectionID.Pointer(),
		CreatedTimestamp: resp.RowCreatedTimestamp.Time,
		Userfields:       resp.Userfields,
	}
}

// FetchDetails resolves the entry's recipe and section references. Entries
// without a recipe or section keep those fields nil.
func (i *MealPlanItem) FetchDetails(ctx context.Context, client *api.Client) error {
	if i.RecipeID != nil {
		recipe, err := client.Recipe(ctx, *i.RecipeID)
		if err != nil {
			return err
		}
		if recipe != nil {
			i.Recipe = NewRecipeFromDetails(recipe)
		}
	}
	if i.SectionID != nil {
		section, err := client.MealPlanSection(ctx, *i.SectionID)
		if err != nil {
			return err
		}
		if section != nil {
			i.Section = NewMealPlanSectionFromResponse(section)
		}
	}
	return nil
}

// MealPlanManager provides meal planning operations.
type MealPlanManager struct {
	client *api.Client
}

// List returns all meal plan entries. With opts.Details each entry's recipe
// and section are resolved, sequentially in list order.
func (m *MealPlanManager) List(ctx context.Context, opts ListOptions) ([]*MealPlanItem, error) {
	data, err := m.client.MealPlan(ctx, opts.Filters)
	if err != nil {
		return nil, err
	}
	items := make([]*MealPlanItem, 0, len(data))
	for i := range data {
		items = append(items, NewMealPlanItemFromResponse(&data[i]))
	}
	if opts.Details {
		for _, item := range items {
			if err := item.FetchDetails(ctx, m.client); err != nil {
				return nil, err
			}
		}
	}
	return items, nil
}

// Sections returns all meal plan sections.
func (m *MealPlanManager) Sections(ctx context.Context, opts ListOptions) ([]*MealPlanSection, error) {
	data, err := m.client.MealPlanSections(ctx, opts.Filters)
	if err != nil {
		return nil, err
	}
	sections := make([]*MealPlanSection, 0, len(data))
	for i := range data {
		sections = append(sections, NewMealPlanSectionFromResponse(&data[i]))
	}
	return sections, nil
}

// Section returns one meal plan section by ID, or (nil, nil) when it does
// not exist.
func (m *MealPlanManager) Section(ctx context.Context, sectionID int) (*MealPlanSection, error) {
	resp, err := m.client.MealPlanSection(ctx, sectionID)
	if err != nil || resp == nil {
		return nil, err
	}
	return NewMealPlanSectionFromResponse(resp), nil
}
