// Package operation
package operation

import "errors"

var (
	// ErrAgentNotFound no booking_agent row for the email
	ErrAgentNotFound = errors.New("booking agent does not exist")
)

// AgentOperationInterface booking agents and their airline authorizations
type AgentOperationInterface interface {
	// GetAgentByEmail fetches one booking agent, agent is valid when err is nil
	GetAgentByEmail(email string) (agent *BookingAgent, err error)
	// AuthorizeAgent links the agent to the airline, an existing link is left untouched
	AuthorizeAgent(email, airline string) (err error)
	// GetAuthorizedAgents lists agents authorized for the airline
	GetAuthorizedAgents(airline string) (agents []*BookingAgent, err error)
}
