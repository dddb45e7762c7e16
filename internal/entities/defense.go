package entities

// DefenseProfile is a read-only snapshot of a defender's reductions taken when
// an attack is resolved
type DefenseProfile struct {
	Force           int `json:"force"`
	AuraShieldBlock int `json:"aura_shield_block"`
	WeaponBlock     int `json:"weapon_block"`
	ArmorBlock      int `json:"armor_block"`
	OtherBlock      int `json:"other_block"`
}

// DefenseProfile snapshots the actor's current defenses. WeaponBlock is zero
// unless the weapon-block stance is active.
func (a *Actor) DefenseProfile() DefenseProfile {
	profile := DefenseProfile{
		Force:           a.FullStat(StatForce),
		AuraShieldBlock: a.AuraShieldBlock(),
		OtherBlock:      a.FullStat(StatBlock),
	}

	if a.Weapon != nil && a.WeaponBlockActive {
		profile.WeaponBlock = a.Weapon.Block
	}
	if a.Armor != nil {
		profile.ArmorBlock = a.Armor.Block
	}

	return profile
}

// AuraShieldBlock is the flat reduction of the active aura shield: the
// actor's control, halved when spread over the full body and doubled by an
// orange aura.
func (a *Actor) AuraShieldBlock() int {
	if !a.AuraShield.Active {
		return 0
	}

	block := a.FullStat(StatControl)
	if a.AuraShield.FullBody {
		block /= 2
	}
	if a.AuraShield.Orange {
		block *= 2
	}
	if block < 0 {
		return 0
	}
	return block
}
