package catalog

type kindTables struct {
	entity string // authors
	link   string // manga_authors
	fk     string // author_id
}

var tablesByKind = map[EntityKind]kindTables{
	KindAuthor: {entity: "authors", link: "manga_authors", fk: "author_id"},
	KindVenue:  {entity: "venues", link: "manga_venues", fk: "venue_id"},
}

func tablesFor(kind EntityKind) (kindTables, error) {
	t, ok := tablesByKind[kind]
	if !ok {
		return kindTables{}, ErrUnknownKind
	}
	return t, nil
}
