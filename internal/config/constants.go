package config

// DefaultDatabasePath is the default path for the store database.
const DefaultDatabasePath = "./book.db"
