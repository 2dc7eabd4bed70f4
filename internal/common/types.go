package common

type Command struct {
	Operation string   `json:"operation"`
	Args      []string `json:"args"`
	SessionId string   `json:"sessionId"`
}
