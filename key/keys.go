// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Movie Catalog - these keys configure access to the TMDB API.
const (
	CatalogToken             = "catalog.token"
	CatalogBaseURL           = "catalog.base_url"
	CatalogLanguage          = "catalog.language"
	CatalogIncludeAdult      = "catalog.include_adult"
	CatalogRequestsPerSecond = "catalog.requests_per_second"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchDebounceMillis       = "search.debounce_ms"
	SearchDiscardStale         = "search.discard_stale"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Search Analytics - these keys configure the search counter and trending list.
const (
	AnalyticsBackend       = "analytics.backend"
	AnalyticsTrendingLimit = "analytics.trending_limit"
	AnalyticsStrict        = "analytics.strict"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
	TUIShowTrending       = "tui.show_trending"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
