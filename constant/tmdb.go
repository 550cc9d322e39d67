package constant

// Movie catalog endpoints.
const (
	TMDBAPIBase   = "https://api.themoviedb.org/3"
	TMDBImageBase = "https://image.tmdb.org/t/p/w500"
	TMDBSiteBase  = "https://www.themoviedb.org/movie"
)

// FetchErrorMessage is shown when the catalog could not be reached or its response could not be read.
const FetchErrorMessage = "Error fetching movies. Please try again later."

// FetchRejectedMessage is shown when the catalog refuses a request without saying why.
const FetchRejectedMessage = "Failed to fetch movies"

// TMDBSettingsURL is where users create their API read access token.
const TMDBSettingsURL = "https://www.themoviedb.org/settings/api"
