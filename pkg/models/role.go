package models

// RoleName is a role as understood by every service that keeps a role table.
type RoleName string

const (
	RoleUser         RoleName = "user"
	RoleStoreManager RoleName = "store_manager"
)

// NewRole is a role grant. The coordinator mints the entry id so the
// grant can be deleted by id during compensation. Data carries the
// role scope where one exists (the store id for store managers) and is
// null for plain user roles.
type NewRole struct {
	ID     RoleEntryID `json:"id"`
	UserID UserID      `json:"user_id"`
	Name   RoleName    `json:"name"`
	Data   any         `json:"data"`
}

// UserRole returns the plain user role grant for a freshly created account.
func UserRole(id RoleEntryID, userID UserID) NewRole {
	return NewRole{ID: id, UserID: userID, Name: RoleUser, Data: nil}
}

// StoreManagerRole returns the store manager grant scoped to a store.
func StoreManagerRole(id RoleEntryID, userID UserID, storeID StoreID) NewRole {
	return NewRole{ID: id, UserID: userID, Name: RoleStoreManager, Data: storeID}
}
