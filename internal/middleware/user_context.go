package middlewares

import (
	"github.com/gin-gonic/gin"
)

const (
	UserIDKey    = "user_id"
	UserCPFKey   = "user_cpf"
	UserEmailKey = "user_email"
)

// ExtractUserContext lê os headers injetados pelo Istio após validar o JWT.
// Os dados servem apenas para log de acesso; a autorização fica com a API de operações,
// que recebe o Authorization original.
//   - X-User-ID: sub do JWT
//   - X-User-CPF: preferred_username do JWT
//   - X-User-Email: email do JWT
func ExtractUserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(UserIDKey, userID)
		}
		if cpf := c.GetHeader("X-User-CPF"); cpf != "" {
			c.Set(UserCPFKey, cpf)
		}
		if email := c.GetHeader("X-User-Email"); email != "" {
			c.Set(UserEmailKey, email)
		}

		c.Next()
	}
}

// GetUserID retorna o ID do usuário autenticado
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetUserCPF retorna o CPF do usuário autenticado
func GetUserCPF(c *gin.Context) string {
	return c.GetString(UserCPFKey)
}

// GetUserEmail retorna o email do usuário
func GetUserEmail(c *gin.Context) string {
	return c.GetString(UserEmailKey)
}
