package domain

// ID identifies tenants and stored schemas. Tenant ids are issued elsewhere
// and taken as given.
type ID string

func (vo ID) String() string {
	return string(vo)
}

// Version counts the replacements of a stored schema, starting at 1.
type Version int

type Name string

func (vo Name) String() string {
	return string(vo)
}

type DisplayName string

func (vo DisplayName) String() string {
	return string(vo)
}
