package contextkeys

type contextKey string

// DBContextKey holds the request-scoped *gorm.DB.
const DBContextKey = contextKey("db")

// AdminContextKey holds the verified admin claims of the request, if any.
const AdminContextKey = contextKey("admin")
