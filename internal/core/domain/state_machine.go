package domain

import (
	"context"
	"fmt"
	"slices"
)

// Graph names a state machine graph.
type Graph string

const (
	GraphPayment       Graph = "payment"
	GraphRefundPayment Graph = "refund_payment"
	GraphOrderPayment  Graph = "order_payment"
)

// Transition names an edge of a graph.
type Transition string

const (
	TransitionProcess        Transition = "process"
	TransitionAuthorize      Transition = "authorize"
	TransitionCapture        Transition = "capture"
	TransitionComplete       Transition = "complete"
	TransitionFail           Transition = "fail"
	TransitionCancel         Transition = "cancel"
	TransitionReverse        Transition = "reverse"
	TransitionRefund         Transition = "refund"
	TransitionPay            Transition = "pay"
	TransitionRequestPayment Transition = "request_payment"
)

// Stateful is implemented by aggregates whose state is owned by the state machine.
// The methods are unexported so only this package can move an aggregate between states.
type Stateful interface {
	stateIn(g Graph) (string, bool)
	setStateIn(g Graph, state string)
}

// Guard is a pure predicate evaluated before a transition may fire.
type Guard interface {
	Allow(ctx context.Context, subject Stateful, t Transition) (bool, error)
}

// GuardFunc adapts a function to Guard.
type GuardFunc func(ctx context.Context, subject Stateful, t Transition) (bool, error)

func (f GuardFunc) Allow(ctx context.Context, subject Stateful, t Transition) (bool, error) {
	return f(ctx, subject, t)
}

// Interceptor runs only when a transition is applied, after the guards passed.
// Returning false vetoes the transition; the interceptor may have rerouted the
// subject through other transitions first.
type Interceptor interface {
	Intercept(ctx context.Context, subject Stateful, t Transition) (proceed bool, err error)
}

type edge struct {
	from []string
	to   string
}

type graphKey struct {
	graph      Graph
	transition Transition
}

// StateMachine applies named transitions over explicit transition tables.
// Guards and interceptors are registered at wiring time; it is not safe to
// register while transitions are being applied.
type StateMachine struct {
	graphs       map[Graph]map[Transition]edge
	guards       map[graphKey][]Guard
	interceptors map[graphKey][]Interceptor
}

// NewStateMachine creates a state machine loaded with the payment, refund
// payment and order payment graphs.
func NewStateMachine() *StateMachine {
	return &StateMachine{
		graphs: map[Graph]map[Transition]edge{
			GraphPayment:       paymentGraph(),
			GraphRefundPayment: refundPaymentGraph(),
			GraphOrderPayment:  orderPaymentGraph(),
		},
		guards:       make(map[graphKey][]Guard),
		interceptors: make(map[graphKey][]Interceptor),
	}
}

// AddGuard registers a guard on a transition.
func (m *StateMachine) AddGuard(g Graph, t Transition, guard Guard) {
	k := graphKey{g, t}
	m.guards[k] = append(m.guards[k], guard)
}

// AddInterceptor registers an interceptor on a transition.
func (m *StateMachine) AddInterceptor(g Graph, t Transition, i Interceptor) {
	k := graphKey{g, t}
	m.interceptors[k] = append(m.interceptors[k], i)
}

// Can reports whether transition t may fire on subject from its current state.
func (m *StateMachine) Can(ctx context.Context, subject Stateful, g Graph, t Transition) (bool, error) {
	e, err := m.edge(g, t)
	if err != nil {
		return false, err
	}
	current, ok := subject.stateIn(g)
	if !ok {
		return false, fmt.Errorf("%w: %s does not support %T", ErrUnknownGraph, g, subject)
	}
	if !slices.Contains(e.from, current) {
		return false, nil
	}

	for _, guard := range m.guards[graphKey{g, t}] {
		allowed, err := guard.Allow(ctx, subject, t)
		if err != nil {
			return false, fmt.Errorf("guard %s.%s: %w", g, t, err)
		}
		if !allowed {
			return false, nil
		}
	}
	return true, nil
}

// Apply fires transition t when it can. applied is false, with a nil error,
// when the current state or a guard or interceptor does not let it fire.
func (m *StateMachine) Apply(ctx context.Context, subject Stateful, g Graph, t Transition) (applied bool, err error) {
	ok, err := m.Can(ctx, subject, g, t)
	if err != nil || !ok {
		return false, err
	}

	for _, i := range m.interceptors[graphKey{g, t}] {
		proceed, err := i.Intercept(ctx, subject, t)
		if err != nil {
			return false, fmt.Errorf("interceptor %s.%s: %w", g, t, err)
		}
		if !proceed {
			return false, nil
		}
	}

	subject.setStateIn(g, m.graphs[g][t].to)
	return true, nil
}

// AvailableTransitions lists the transitions whose source states include the
// subject's current state, ignoring guards.
func (m *StateMachine) AvailableTransitions(subject Stateful, g Graph) []Transition {
	current, ok := subject.stateIn(g)
	if !ok {
		return nil
	}
	var out []Transition
	for t, e := range m.graphs[g] {
		if slices.Contains(e.from, current) {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}

func (m *StateMachine) edge(g Graph, t Transition) (edge, error) {
	transitions, ok := m.graphs[g]
	if !ok {
		return edge{}, fmt.Errorf("%w: %s", ErrUnknownGraph, g)
	}
	e, ok := transitions[t]
	if !ok {
		return edge{}, fmt.Errorf("%w: %s.%s", ErrUnknownTransition, g, t)
	}
	return e, nil
}

func paymentGraph() map[Transition]edge {
	s := func(states ...PaymentState) []string {
		out := make([]string, len(states))
		for i, st := range states {
			out[i] = string(st)
		}
		return out
	}
	return map[Transition]edge{
		TransitionProcess:   {from: s(PaymentStateNew, PaymentStateAuthorized), to: string(PaymentStateProcessing)},
		TransitionAuthorize: {from: s(PaymentStateNew, PaymentStateProcessing), to: string(PaymentStateAuthorized)},
		TransitionCapture:   {from: s(PaymentStateAuthorized, PaymentStateProcessing), to: string(PaymentStateCompleted)},
		TransitionComplete:  {from: s(PaymentStateNew, PaymentStateProcessing, PaymentStateAuthorized), to: string(PaymentStateCompleted)},
		TransitionFail:      {from: s(PaymentStateNew, PaymentStateProcessing, PaymentStateAuthorized), to: string(PaymentStateFailed)},
		TransitionCancel:    {from: s(PaymentStateNew, PaymentStateProcessing, PaymentStateAuthorized, PaymentStateProcessingReversal), to: string(PaymentStateCancelled)},
		TransitionReverse:   {from: s(PaymentStateCompleted), to: string(PaymentStateProcessingReversal)},
		TransitionRefund:    {from: s(PaymentStateCompleted, PaymentStateProcessingReversal), to: string(PaymentStateRefunded)},
	}
}

func refundPaymentGraph() map[Transition]edge {
	return map[Transition]edge{
		TransitionComplete: {from: []string{string(RefundStateNew)}, to: string(RefundStateCompleted)},
		TransitionFail:     {from: []string{string(RefundStateNew)}, to: string(RefundStateFailed)},
	}
}

func orderPaymentGraph() map[Transition]edge {
	s := func(states ...OrderPaymentState) []string {
		out := make([]string, len(states))
		for i, st := range states {
			out[i] = string(st)
		}
		return out
	}
	return map[Transition]edge{
		TransitionRequestPayment: {from: s(OrderPaymentCancelled), to: string(OrderPaymentAwaitingPayment)},
		TransitionAuthorize:      {from: s(OrderPaymentAwaitingPayment), to: string(OrderPaymentAuthorized)},
		TransitionPay:            {from: s(OrderPaymentAwaitingPayment, OrderPaymentAuthorized), to: string(OrderPaymentPaid)},
		TransitionCancel:         {from: s(OrderPaymentAwaitingPayment, OrderPaymentAuthorized), to: string(OrderPaymentCancelled)},
		TransitionRefund:         {from: s(OrderPaymentPaid), to: string(OrderPaymentRefunded)},
	}
}
