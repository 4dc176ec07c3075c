package session

// Scope ámbito ya verificado de una petición: el usuario autenticado y la sucursal que
// tiene seleccionada. BranchID solo se rellena si la sucursal pertenece a UserID.
type Scope struct {
	UserID   string
	BranchID string
}

// HasBranch informa si hay sucursal seleccionada.
func (s Scope) HasBranch() bool { return s.BranchID != "" }
