package entity

// Filter selects articles for the public listing. Author and Favorited are usernames.
type Filter struct {
	Tag       string
	Author    string
	Favorited string
	Pagination
}

// Pagination bounds a listing. Limit <= 0 means unbounded, Offset <= 0 means from the start.
type Pagination struct {
	Limit  int
	Offset int
}

// Page is one page of a listing together with the size of the whole filtered set.
type Page struct {
	Articles []Article
	Count    int64
}

// EmptyPage is the result of a filter that cannot match anything.
func EmptyPage() Page {
	return Page{Articles: []Article{}, Count: 0}
}

// OrphanReport summarises one maintenance run.
type OrphanReport struct {
	Comments          int64 // comments whose article is gone
	Favorites         int64 // favorite edges whose article or user is gone
	DetachedComments  int64 // comments whose author is gone, now without user
	RecountedArticles int64
}
