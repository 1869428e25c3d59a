package handlers

// ErrorResult es el cuerpo devuelto cuando falla el proveedor
type ErrorResult struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

// FatalErrorResponse es el cuerpo de los errores que hacen fallar la petición
type FatalErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}
