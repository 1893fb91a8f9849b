package domain

import "time"

// Agent is a sales agent working an area on commission.
type Agent struct {
	Code        string  `json:"agentCode" bson:"agent_code"`
	Name        string  `json:"agentName" bson:"agent_name"`
	WorkingArea string  `json:"workingArea" bson:"working_area"`
	Commission  float64 `json:"commission" bson:"commission"`
	PhoneNo     string  `json:"phoneNo" bson:"phone_no"`
	Country     string  `json:"country" bson:"country"`
}

// Customer is a buyer served by an agent.
type Customer struct {
	Code           string  `json:"custCode" bson:"cust_code"`
	Name           string  `json:"custName" bson:"cust_name"`
	City           string  `json:"custCity" bson:"cust_city"`
	WorkingArea    string  `json:"workingArea" bson:"working_area"`
	Country        string  `json:"custCountry" bson:"cust_country"`
	Grade          int     `json:"grade" bson:"grade"`
	OpeningAmt     float64 `json:"openingAmt" bson:"opening_amt"`
	ReceiveAmt     float64 `json:"receiveAmt" bson:"receive_amt"`
	PaymentAmt     float64 `json:"paymentAmt" bson:"payment_amt"`
	OutstandingAmt float64 `json:"outstandingAmt" bson:"outstanding_amt"`
	PhoneNo        string  `json:"phoneNo" bson:"phone_no"`
	AgentCode      string  `json:"agentCode" bson:"agent_code"`
}

// Order is a purchase placed by a customer through an agent.
type Order struct {
	Number        int64     `json:"ordNum" bson:"ord_num"`
	Amount        float64   `json:"ordAmount" bson:"ord_amount"`
	AdvanceAmount float64   `json:"advanceAmount" bson:"advance_amount"`
	Date          time.Time `json:"ordDate" bson:"ord_date"`
	CustomerCode  string    `json:"custCode" bson:"cust_code"`
	AgentCode     string    `json:"agentCode" bson:"agent_code"`
	Description   string    `json:"ordDescription" bson:"ord_description"`
}

// AmountTotal is one row of an order amount aggregation.
type AmountTotal struct {
	Key   string  `json:"key" bson:"_id"`
	Total float64 `json:"totalAmount" bson:"total"`
	Count int64   `json:"orders" bson:"count"`
}
