package grocy

import (
	"sync"

	"github.com/grocyhq/go-grocy/api"
)

// Client is the entry point to the Grocy API. It owns one shared transport
// client and hands out one manager per domain area, built lazily on first
// access.
type Client struct {
	api *api.Client

	stockOnce sync.Once
	stock     *StockManager

	choresOnce sync.Once
	chores     *ChoreManager

	choresLogOnce sync.Once
	choresLog     *ChoreLogManager

	tasksOnce sync.Once
	tasks     *TaskManager

	batteriesOnce sync.Once
	batteries     *BatteryManager

	equipmentOnce sync.Once
	equipment     *EquipmentManager

	recipesOnce sync.Once
	recipes     *RecipeManager

	mealPlanOnce sync.Once
	mealPlan     *MealPlanManager

	shoppingListOnce sync.Once
	shoppingList     *ShoppingListManager

	usersOnce sync.Once
	users     *UserManager

	systemOnce sync.Once
	system     *SystemManager

	genericOnce sync.Once
	generic     *GenericEntityManager

	calendarOnce sync.Once
	calendar     *CalendarManager

	filesOnce sync.Once
	files     *FileManager
}

// New creates a Grocy client. Use api.DemoModeKey as the API key to talk to
// the public demo server without authentication.
func New(host, apiKey string, opts ...api.Option) (*Client, error) {
	apiClient, err := api.NewClient(host, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithAPI(apiClient), nil
}

// NewWithAPI wraps an existing transport client. Useful when the embedding
// application needs to share or instrument the transport.
func NewWithAPI(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// API exposes the underlying transport client.
func (c *Client) API() *api.Client {
	return c.api
}

// Stock accesses stock management operations.
func (c *Client) Stock() *StockManager {
	c.stockOnce.Do(func() { c.stock = &StockManager{client: c.api} })
	return c.stock
}

// Chores accesses chore management operations.
func (c *Client) Chores() *ChoreManager {
	c.choresOnce.Do(func() { c.chores = &ChoreManager{client: c.api} })
	return c.chores
}

// ChoresLog accesses chore execution records.
func (c *Client) ChoresLog() *ChoreLogManager {
	c.choresLogOnce.Do(func() { c.choresLog = &ChoreLogManager{client: c.api} })
	return c.choresLog
}

// Tasks accesses task management operations.
func (c *Client) Tasks() *TaskManager {
	c.tasksOnce.Do(func() { c.tasks = &TaskManager{client: c.api} })
	return c.tasks
}

// Batteries accesses battery tracking operations.
func (c *Client) Batteries() *BatteryManager {
	c.batteriesOnce.Do(func() { c.batteries = &BatteryManager{client: c.api} })
	return c.batteries
}

// Equipment accesses equipment management operations.
func (c *Client) Equipment() *EquipmentManager {
	c.equipmentOnce.Do(func() { c.equipment = &EquipmentManager{client: c.api} })
	return c.equipment
}

// Recipes accesses recipe operations.
func (c *Client) Recipes() *RecipeManager {
	c.recipesOnce.Do(func() { c.recipes = &RecipeManager{client: c.api} })
	return c.recipes
}

// MealPlan accesses meal planning operations.
func (c *Client) MealPlan() *MealPlanManager {
	c.mealPlanOnce.Do(func() { c.mealPlan = &MealPlanManager{client: c.api} })
	return c.mealPlan
}

// ShoppingList accesses shopping list operations.
func (c *Client) ShoppingList() *ShoppingListManager {
	c.shoppingListOnce.Do(func() { c.shoppingList = &ShoppingListManager{client: c.api} })
	return c.shoppingList
}

// Users accesses user management operations.
func (c *Client) Users() *UserManager {
	c.usersOnce.Do(func() { c.users = &UserManager{client: c.api} })
	return c.users
}

// System accesses system information and configuration.
func (c *Client) System() *SystemManager {
	c.systemOnce.Do(func() { c.system = &SystemManager{client: c.api} })
	return c.system
}

// Generic accesses untyped CRUD on any entity type.
func (c *Client) Generic() *GenericEntityManager {
	c.genericOnce.Do(func() { c.generic = &GenericEntityManager{client: c.api} })
	return c.generic
}

// Calendar accesses calendar operations.
func (c *Client) Calendar() *CalendarManager {
	c.calendarOnce.Do(func() { c.calendar = &CalendarManager{client: c.api} })
	return c.calendar
}

// Files accesses file management operations.
func (c *Client) Files() *FileManager {
	c.filesOnce.Do(func() { c.files = &FileManager{client: c.api} })
	return c.files
}

// ListOptions controls list-shaped manager calls.
type ListOptions struct {
	// Details runs FetchDetails on every returned item: one additional
	// request per item on top of the list call, sequentially in list order.
	Details bool

	// Filters are server-side query filter expressions like "field=value",
	// passed through verbatim. The server rejects malformed expressions with
	// a 500-class status.
	Filters []string
}
