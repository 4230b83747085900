// Package database
package database

import (
	"context"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type AgentOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAgentOperation(db *gorm.DB, queryTimeout time.Duration) *AgentOperation {
	return &AgentOperation{db: db, queryTimeout: queryTimeout}
}

func (agentOperation *AgentOperation) GetAgentByEmail(email string) (agent *BookingAgent, err error) {
	agent = &BookingAgent{}
	ctx, cancel := context.WithTimeout(context.Background(), agentOperation.queryTimeout)
	defer cancel()
	err = agentOperation.db.WithContext(ctx).Where("email = ?", email).Take(agent).Error
	return agent, notFound(err, ErrAgentNotFound)
}

func (agentOperation *AgentOperation) AuthorizeAgent(email, airline string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), agentOperation.queryTimeout)
	defer cancel()
	return agentOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&AgentAuthorization{AgentEmail: email, AirlineName: airline}).
			Error
	})
}

func (agentOperation *AgentOperation) GetAuthorizedAgents(airline string) (agents []*BookingAgent, err error) {
	agents = make([]*BookingAgent, 0)
	ctx, cancel := context.WithTimeout(context.Background(), agentOperation.queryTimeout)
	defer cancel()
	err = agentOperation.db.WithContext(ctx).
		Select("booking_agent.email", "booking_agent.booking_agent_id").
		Joins("JOIN agent_airline_authorization ON agent_airline_authorization.agent_email = booking_agent.email").
		Where("agent_airline_authorization.airline_name = ?", airline).
		Order("booking_agent.email").
		Find(&agents).
		Error
	return
}
