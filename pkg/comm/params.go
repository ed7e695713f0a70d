package comm

import (
	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/params"
)

// SendParameterList restarts sending every parameter in the background.
func (m *Manager) SendParameterList() {
	m.sendParamsIndex = 0
}

// ParamsPending reports whether the background parameter send is running.
func (m *Manager) ParamsPending() bool {
	return m.sendParamsIndex < m.sys.Params.Count()
}

func (m *Manager) forMe(target uint32) bool {
	return target == uint32(m.sysid)
}

func (m *Manager) handleParamRequestList(e *link.ParamRequestList) {
	if m.forMe(e.TargetSystem) {
		m.sendParamsIndex = 0
	}
}

func (m *Manager) handleParamRequestRead(e *link.ParamRequestRead) {
	if !m.forMe(e.TargetSystem) {
		return
	}
	id := params.ID(e.ParamIndex)
	if e.ParamIndex < 0 {
		var ok bool
		if id, ok = m.sys.Params.Lookup(e.ParamID); !ok {
			return
		}
	}
	m.sendParamValue(id)
}

func (m *Manager) lookupParam(target uint32, name string, typ params.Type) (params.ID, bool) {
	if !m.forMe(target) {
		return 0, false
	}
	id, ok := m.sys.Params.Lookup(name)
	if !ok || m.sys.Params.Type(id) != typ {
		return 0, false
	}
	return id, true
}

func (m *Manager) handleParamSetInt(e *link.ParamSetInt) {
	if id, ok := m.lookupParam(e.TargetSystem, e.ParamID, params.TypeInt32); ok {
		m.sys.Params.SetInt(id, e.Value)
	}
}

func (m *Manager) handleParamSetFloat(e *link.ParamSetFloat) {
	if id, ok := m.lookupParam(e.TargetSystem, e.ParamID, params.TypeFloat); ok {
		m.sys.Params.SetFloat(id, e.Value)
	}
}

func (m *Manager) sendParamValue(id params.ID) {
	p := m.sys.Params
	if id < 0 || int(id) >= p.Count() {
		return
	}
	msg := &link.ParamValue{
		ParamID: p.Name(id),
		Index:   uint32(id),
		Count:   uint32(p.Count()),
	}
	switch p.Type(id) {
	case params.TypeInt32:
		msg.Type = link.ParamTypeInt32
		msg.IntValue = p.Int(id)
	case params.TypeFloat:
		msg.Type = link.ParamTypeFloat
		msg.FloatValue = p.Float(id)
	default:
		return
	}
	m.send(msg)
}

func (m *Manager) sendLowPriority() {
	if m.ParamsPending() {
		m.sendParamValue(params.ID(m.sendParamsIndex))
		m.sendParamsIndex++
	}
}
