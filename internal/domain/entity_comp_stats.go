package domain

// TakeDamage reduces HP. Returns true if this hit killed the entity.
func (s *StatsComponent) TakeDamage(amount int) bool {
	if s.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	s.HP -= amount

	if s.HP <= 0 {
		s.HP = 0
		s.IsDead = true
		return true
	}
	return false
}

// Restore brings a dead or damaged entity back to full HP.
func (s *StatsComponent) Restore() {
	s.HP = s.MaxHP
	s.IsDead = false
}

// GainXP adds experience and levels up as often as it overflows. Each level
// raises MaxHP, heals fully and makes the next level 20% more expensive.
// Returns the number of levels gained.
func (s *StatsComponent) GainXP(amount int) int {
	if amount <= 0 || s.MaxXP <= 0 {
		return 0
	}

	s.XP += amount
	levels := 0
	for s.XP >= s.MaxXP {
		s.XP -= s.MaxXP
		s.Level++
		s.MaxXP = s.MaxXP * 6 / 5
		s.MaxHP += LevelUpHPBonus
		s.HP = s.MaxHP
		levels++
	}
	return levels
}
