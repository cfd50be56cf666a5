package api

import (
	"context"
	"fmt"
)

// MealPlanEntryResponse represents a meal plan entry
type MealPlanEntryResponse struct {
	ID                  Int        `json:"id"`
	Day                 Time       `json:"day"`
	Type                string     `json:"type"`
	RecipeID            NullInt    `json:"recipe_id"`
	RecipeServings      NullInt    `json:"recipe_servings"`
	Note                NullString `json:"note"`
	ProductID           NullInt    `json:"product_id"`
	ProductAmount       NullFloat  `json:"product_amount"`
	ProductQuID         NullInt    `json:"product_qu_id"`
	SectionID           NullInt    `json:"section_id"`
	RowCreatedTimestamp Time       `json:"row_created_timestamp"`
	Userfields          Userfields `json:"userfields"`
}

func (m *MealPlanEntryResponse) validate() error {
	if m.ID == 0 {
		return missingField("meal plan entry", "id")
	}
	if m.Day.IsZero() {
		return missingField("meal plan entry", "day")
	}
	return nil
}

// MealPlanSectionResponse represents a meal plan section
type MealPlanSectionResponse struct {
	ID                  Int        `json:"id"`
	Name                NullString `json:"name"`
	SortNumber          NullInt    `json:"sort_number"`
	RowCreatedTimestamp Time       `json:"row_created_timestamp"`
}

func (m *MealPlanSectionResponse) validate() error {
	if m.RowCreatedTimestamp.IsZero() {
		return missingField("meal plan section", "row_created_timestamp")
	}
	return nil
}

// MealPlan returns all meal plan entries.
func (c *Client) MealPlan(ctx context.Context, filters []string) ([]MealPlanEntryResponse, error) {
	body, err := c.Get(ctx, "objects/meal_plan", filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[MealPlanEntryResponse](body)
}

// MealPlanSections returns all meal plan sections.
func (c *Client) MealPlanSections(ctx context.Context, filters []string) ([]MealPlanSectionResponse, error) {
	body, err := c.Objects(ctx, EntityMealPlanSections, filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[MealPlanSectionResponse](body)
}

// MealPlanSection returns a single meal plan section by ID. The server has no
// dedicated lookup endpoint, so this filters the section list.
func (c *Client) MealPlanSection(ctx context.Context, sectionID int) (*MealPlanSectionResponse, error) {
	body, err := c.Get(ctx, "objects/meal_plan_sections", []string{fmt.Sprintf("id=%d", sectionID)})
	if err != nil || body == nil {
		return nil, err
	}
	sections, err := parseList[MealPlanSectionResponse](body)
	if err != nil || len(sections) != 1 {
		return nil, err
	}
	return &sections[0], nil
}
