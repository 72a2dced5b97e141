package digest

// Article is one (title, url) pair in a digest section.
type Article struct {
	Title string
	URL   string
}

// UserDigest collects one user's sections for a single run, keyed by
// keyword. Keyword order is insertion order so the rendered email lists
// sections in the order subscriptions were processed.
type UserDigest struct {
	keywords []string
	sections map[string][]Article
}

func newUserDigest() *UserDigest {
	return &UserDigest{sections: make(map[string][]Article)}
}

// set stores the articles for a keyword. A repeated keyword keeps its
// original position; the last write wins.
func (d *UserDigest) set(keyword string, articles []Article) {
	if _, ok := d.sections[keyword]; !ok {
		d.keywords = append(d.keywords, keyword)
	}
	d.sections[keyword] = articles
}

func (d *UserDigest) Keywords() []string {
	return d.keywords
}

func (d *UserDigest) Articles(keyword string) []Article {
	return d.sections[keyword]
}

// Aggregator builds the per-user digests for one run. Users are kept in
// insertion order (the order of their first qualifying subscription) so
// send order is reproducible across runs; a plain map would not be.
type Aggregator struct {
	emails []string
	users  map[string]*UserDigest
}

func NewAggregator() *Aggregator {
	return &Aggregator{users: make(map[string]*UserDigest)}
}

// Add records one subscription's qualifying articles under the owner's
// email. Callers must not add empty article lists; a user with no
// qualifying articles must not appear at all.
func (a *Aggregator) Add(email, keyword string, articles []Article) {
	d, ok := a.users[email]
	if !ok {
		d = newUserDigest()
		a.users[email] = d
		a.emails = append(a.emails, email)
	}
	d.set(keyword, articles)
}

func (a *Aggregator) Emails() []string {
	return a.emails
}

func (a *Aggregator) Digest(email string) *UserDigest {
	return a.users[email]
}

func (a *Aggregator) Len() int {
	return len(a.emails)
}
