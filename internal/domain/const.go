package domain

const (
	// TOKEN_URI_SEPARATOR delimits records inside the packed metadata buffer
	TOKEN_URI_SEPARATOR byte = '\n'
)
