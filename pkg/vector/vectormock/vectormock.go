// Package vectormock contains gomock test doubles for the vector contracts.
package vectormock

import (
	"reflect"

	"github.com/golang/mock/gomock"
	"go.llib.dev/containers/pkg/vector"
)

var (
	_ vector.Vector[int]      = (*MockVector[int])(nil)
	_ vector.ConstVector[int] = (*MockConstVector[int])(nil)
)

// MockVector is a mock of the vector.Vector interface.
type MockVector[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockVectorMockRecorder[T]
}

// MockVectorMockRecorder is the mock recorder for MockVector.
type MockVectorMockRecorder[T any] struct {
	mock *MockVector[T]
}

// NewMockVector creates a new mock instance.
func NewMockVector[T any](ctrl *gomock.Controller) *MockVector[T] {
	mock := &MockVector[T]{ctrl: ctrl}
	mock.recorder = &MockVectorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVector[T]) EXPECT() *MockVectorMockRecorder[T] {
	return m.recorder
}

func (m *MockVector[T]) Get(index int) *T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", index)
	ret0, _ := ret[0].(*T)
	return ret0
}

func (mr *MockVectorMockRecorder[T]) Get(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockVector[T])(nil).Get), index)
}

func (m *MockVector[T]) GetFront() *T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFront")
	ret0, _ := ret[0].(*T)
	return ret0
}

func (mr *MockVectorMockRecorder[T]) GetFront() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFront", reflect.TypeOf((*MockVector[T])(nil).GetFront))
}

func (m *MockVector[T]) GetBack() *T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBack")
	ret0, _ := ret[0].(*T)
	return ret0
}

func (mr *MockVectorMockRecorder[T]) GetBack() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBack", reflect.TypeOf((*MockVector[T])(nil).GetBack))
}

func (m *MockVector[T]) GetSize() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSize")
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockVectorMockRecorder[T]) GetSize() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSize", reflect.TypeOf((*MockVector[T])(nil).GetSize))
}

// MockConstVector is a mock of the vector.ConstVector interface.
type MockConstVector[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockConstVectorMockRecorder[T]
}

// MockConstVectorMockRecorder is the mock recorder for MockConstVector.
type MockConstVectorMockRecorder[T any] struct {
	mock *MockConstVector[T]
}

func NewMockConstVector[T any](ctrl *gomock.Controller) *MockConstVector[T] {
	mock := &MockConstVector[T]{ctrl: ctrl}
	mock.recorder = &MockConstVectorMockRecorder[T]{mock}
	return mock
}

func (m *MockConstVector[T]) EXPECT() *MockConstVectorMockRecorder[T] {
	return m.recorder
}

func (m *MockConstVector[T]) Get(index int) T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", index)
	ret0, _ := ret[0].(T)
	return ret0
}

func (mr *MockConstVectorMockRecorder[T]) Get(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockConstVector[T])(nil).Get), index)
}

func (m *MockConstVector[T]) GetFront() T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFront")
	ret0, _ := ret[0].(T)
	return ret0
}

func (mr *MockConstVectorMockRecorder[T]) GetFront() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFront", reflect.TypeOf((*MockConstVector[T])(nil).GetFront))
}

func (m *MockConstVector[T]) GetBack() T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBack")
	ret0, _ := ret[0].(T)
	return ret0
}

func (mr *MockConstVectorMockRecorder[T]) GetBack() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBack", reflect.TypeOf((*MockConstVector[T])(nil).GetBack))
}

func (m *MockConstVector[T]) GetSize() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSize")
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockConstVectorMockRecorder[T]) GetSize() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSize", reflect.TypeOf((*MockConstVector[T])(nil).GetSize))
}
