package roster

type factory struct{}

var Factory factory

func (f factory) NewController(opts ...Option) Controller {
	return newController(opts...)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, ctl Controller) *Cursor {
	return newCursor(query, ctl)
}
