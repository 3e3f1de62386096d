package robot

// Trajectory is the pose of a robot before any command (index 0) and after
// each command in turn.
type Trajectory []Pose

// Plan simulates cmds from start. The result always has len(cmds)+1 poses;
// no pose is rejected here, so an off-table path can still be inspected.
func Plan(start Pose, cmds []Command) Trajectory {
	traj := make(Trajectory, len(cmds)+1)
	traj[0] = start
	for i, c := range cmds {
		traj[i+1] = traj[i].Apply(c)
	}
	return traj
}

// Final returns the last pose of t.
func (t Trajectory) Final() Pose {
	if len(t) == 0 {
		return Pose{}
	}
	return t[len(t)-1]
}

// Positions returns the position at every step.
func (t Trajectory) Positions() []Position {
	out := make([]Position, len(t))
	for i, p := range t {
		out[i] = p.Position
	}
	return out
}

// HoldFinal returns t extended to n steps by repeating its final pose.
// A trajectory already n or more steps long is returned unchanged.
func (t Trajectory) HoldFinal(n int) Trajectory {
	if len(t) == 0 || len(t) >= n {
		return t
	}
	out := make(Trajectory, n)
	copy(out, t)
	last := t.Final()
	for i := len(t); i < n; i++ {
		out[i] = last
	}
	return out
}
