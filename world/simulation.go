package world

import "log"

// Step advances the scene by one frame. Camera movement is not part of it; that
// happens in ApplyCommand whenever input arrives.
func Step(s *Scene) {
	for i := range s.Snowmen {
		s.Snowmen[i].Arm.advance()
	}

	s.previous = resize(s.previous, len(s.Snowmen))
	s.away = resize(s.away, len(s.Snowmen))
	previous, away := s.previous, s.away
	for i := range s.Snowmen {
		m := &s.Snowmen[i]
		previous[i] = m.Position
		away[i] = normalize(flat(m.Position.Sub(s.Camera.Position)))
		if !m.Mobile {
			continue
		}
		m.Mode = resolveMode(s.Flee.Active, FlatDistance(m.Position, s.Camera.Position))
		steerSnowman(m, away[i])
	}

	updateSnowball(s)

	if s.Flee.Active {
		for i := range s.Snowmen {
			m := &s.Snowmen[i]
			if m.Mobile {
				m.Position = m.Position.Add(away[i].Mul(FleeStep))
			}
		}
		s.Flee.advance()
		if !s.Flee.Active {
			log.Printf("snowmen stopped fleeing at frame %d", s.Frame)
			for i := range s.Snowmen {
				m := &s.Snowmen[i]
				if m.Mobile {
					m.Mode = resolveMode(false, FlatDistance(m.Position, s.Camera.Position))
				}
			}
		}
	}

	for i := range s.Snowmen {
		m := &s.Snowmen[i]
		if m.Mobile && s.snowmanBlocked(m.Position) {
			m.Position = previous[i]
		}
		m.Yaw += m.Spin
	}
	s.Frame++
}

func resize(v []Vector, n int) []Vector {
	if cap(v) < n {
		return make([]Vector, n)
	}
	return v[:n]
}
