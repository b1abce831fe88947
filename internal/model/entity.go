package model

// Entity is implemented by every persisted type. The entity name is also the table name.
type Entity interface {
	EntityName() string
}

// InsertOrder lists entity names so that referenced rows are written before the rows referencing them.
var InsertOrder = []string{
	Coffee{}.EntityName(),
	CoffeeMachine{}.EntityName(),
	Brew{}.EntityName(),
}
