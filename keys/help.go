package keys

// HelpCategory organizes commands by function
type HelpCategory string

const (
	HelpCategoryNavigation HelpCategory = "Navigation"
	HelpCategoryCatalog    HelpCategory = "Catalog"
	HelpCategoryView       HelpCategory = "View"
	HelpCategoryOther      HelpCategory = "Other"
	HelpCategoryUncategory HelpCategory = "Uncategorized" // For keys without categories
)

// KeyHelpInfo adds extended help information to key bindings
type KeyHelpInfo struct {
	Description string       // Extended description for help text
	Category    HelpCategory // Category for organizing in help screens
}

// KeyHelpMap maps KeyNames to their help information
var KeyHelpMap = map[KeyName]KeyHelpInfo{
	// Navigation category
	KeyUp:       {Description: "Move selection up (Vim j/k keys supported)", Category: HelpCategoryNavigation},
	KeyDown:     {Description: "Move selection down (Vim j/k keys supported)", Category: HelpCategoryNavigation},
	KeyPageUp:   {Description: "Scroll one viewport up (Vim Ctrl+u supported)", Category: HelpCategoryNavigation},
	KeyPageDown: {Description: "Scroll one viewport down (Vim Ctrl+d supported)", Category: HelpCategoryNavigation},
	KeyHome:     {Description: "Jump to the first row", Category: HelpCategoryNavigation},
	KeyEnd:      {Description: "Jump to the last row", Category: HelpCategoryNavigation},

	// Catalog category
	KeyFilter: {Description: "Filter rows by name (case-insensitive substring)", Category: HelpCategoryCatalog},
	KeySort:   {Description: "Cycle the sort key between name and price", Category: HelpCategoryCatalog},
	KeyFav:    {Description: "Toggle favorite on the selected item", Category: HelpCategoryCatalog},
	KeyEnter:  {Description: "Open the detail view for the selected item", Category: HelpCategoryCatalog},
	KeyYank:   {Description: "Copy the selected item to the clipboard", Category: HelpCategoryCatalog},

	// View category
	KeyNaive: {Description: "Switch between optimized and naive rendering", Category: HelpCategoryView},

	// Other category
	KeyEsc:  {Description: "Cancel/exit current mode", Category: HelpCategoryOther},
	KeyQuit: {Description: "Quit the application", Category: HelpCategoryOther},
	KeyHelp: {Description: "Show help screen", Category: HelpCategoryOther},
}

// GetKeyHelp returns the help information for a key
func GetKeyHelp(keyName KeyName) KeyHelpInfo {
	info, exists := KeyHelpMap[keyName]
	if !exists {
		// Return default help for unknown keys
		return KeyHelpInfo{
			Description: "No description",
			Category:    HelpCategoryUncategory,
		}
	}
	return info
}

// GetKeysInCategory returns all key bindings in a given category
func GetKeysInCategory(category HelpCategory) []KeyName {
	var keys []KeyName
	for k, info := range KeyHelpMap {
		if info.Category == category {
			keys = append(keys, k)
		}
	}
	return keys
}

// GetAllCategories returns all categories that have at least one key
func GetAllCategories() []HelpCategory {
	categoryMap := make(map[HelpCategory]bool)
	for _, info := range KeyHelpMap {
		categoryMap[info.Category] = true
	}

	// Convert map to slice
	categories := make([]HelpCategory, 0, len(categoryMap))
	for category := range categoryMap {
		categories = append(categories, category)
	}

	return categories
}
