package core

func weapon(internal, name, family string) *EquipmentType {
	return &EquipmentType{InternalName: internal, Name: name, Kind: KindWeapon, AmmoFamily: family}
}

func ammo(internal, name, family, munition string, shots int) *EquipmentType {
	return &EquipmentType{InternalName: internal, Name: name, Kind: KindAmmo, AmmoFamily: family, Munition: munition, ShotsPerTon: shots}
}

func misc(internal, name string) *EquipmentType {
	return &EquipmentType{InternalName: internal, Name: name, Kind: KindMisc}
}

func init() {
	types := []*EquipmentType{
		weapon("ISSmallLaser", "Small Laser", ""),
		weapon("ISMediumLaser", "Medium Laser", ""),
		weapon("ISLargeLaser", "Large Laser", ""),
		weapon("ISERLargeLaser", "ER Large Laser", ""),
		weapon("ISPPC", "PPC", ""),
		weapon("ISFlamer", "Flamer", ""),
		weapon("CLERMediumLaser", "ER Medium Laser (Clan)", ""),
		weapon("ISMachine Gun", "Machine Gun", "MG"),
		weapon("ISAC2", "AC/2", "AC/2"),
		weapon("ISAC5", "AC/5", "AC/5"),
		weapon("ISAC10", "AC/10", "AC/10"),
		weapon("ISAC20", "AC/20", "AC/20"),
		weapon("ISLRM5", "LRM 5", "LRM-5"),
		weapon("ISLRM10", "LRM 10", "LRM-10"),
		weapon("ISLRM15", "LRM 15", "LRM-15"),
		weapon("ISLRM20", "LRM 20", "LRM-20"),
		weapon("ISSRM2", "SRM 2", "SRM-2"),
		weapon("ISSRM4", "SRM 4", "SRM-4"),
		weapon("ISSRM6", "SRM 6", "SRM-6"),
		weapon("ISStreakSRM2", "Streak SRM 2", "Streak SRM-2"),
		weapon("ISGaussRifle", "Gauss Rifle", "Gauss"),

		ammo("ISMG Ammo (200)", "IS Ammo MG - Full", "MG", "Standard", 200),
		ammo("ISMG Ammo (100)", "IS Ammo MG - Half", "MG", "Standard", 100),
		ammo("ISAC2 Ammo", "IS Ammo AC/2", "AC/2", "Standard", 45),
		ammo("ISAC5 Ammo", "IS Ammo AC/5", "AC/5", "Standard", 20),
		ammo("ISAC5 Precision Ammo", "IS Ammo AC/5 Precision", "AC/5", "Precision", 10),
		ammo("ISAC10 Ammo", "IS Ammo AC/10", "AC/10", "Standard", 10),
		ammo("ISAC20 Ammo", "IS Ammo AC/20", "AC/20", "Standard", 5),
		ammo("ISLRM5 Ammo", "IS Ammo LRM-5", "LRM-5", "Standard", 24),
		ammo("ISLRM10 Ammo", "IS Ammo LRM-10", "LRM-10", "Standard", 12),
		ammo("ISLRM10 Frag Ammo", "IS Ammo LRM-10 Fragmentation", "LRM-10", "Fragmentation", 12),
		ammo("ISLRM15 Ammo", "IS Ammo LRM-15", "LRM-15", "Standard", 8),
		ammo("ISLRM20 Ammo", "IS Ammo LRM-20", "LRM-20", "Standard", 6),
		ammo("ISSRM2 Ammo", "IS Ammo SRM-2", "SRM-2", "Standard", 50),
		ammo("ISSRM4 Ammo", "IS Ammo SRM-4", "SRM-4", "Standard", 25),
		ammo("ISSRM6 Ammo", "IS Ammo SRM-6", "SRM-6", "Standard", 15),
		ammo("ISSRM6 Inferno Ammo", "IS Ammo SRM-6 Inferno", "SRM-6", "Inferno", 15),
		ammo("ISStreakSRM2 Ammo", "IS Streak SRM 2 Ammo", "Streak SRM-2", "Standard", 50),
		ammo("ISGauss Ammo", "IS Gauss Ammo", "Gauss", "Standard", 8),

		misc("Heat Sink", "Heat Sink"),
		misc("ISDoubleHeatSink", "Double Heat Sink"),
		misc("Jump Jet", "Jump Jet"),
		misc("ISCASE", "CASE"),
		misc("ISTargeting Computer", "Targeting Computer"),
	}

	// One-shot launchers carry their own ammunition, linked by family.
	for _, w := range []*EquipmentType{
		weapon("ISSRM4 (OS)", "SRM 4 (OS)", "SRM-4"),
		weapon("ISSRM6 (OS)", "SRM 6 (OS)", "SRM-6"),
		weapon("ISLRM10 (OS)", "LRM 10 (OS)", "LRM-10"),
	} {
		w.OneShot = true
		types = append(types, w)
	}

	// Battle armor.
	for _, m := range []*EquipmentType{
		misc("BABasicManipulator", "Basic Manipulator"),
		misc("BABattleClaw", "Battle Claw"),
		misc("BAArmoredGlove", "Armored Glove"),
		misc("BAVibroClaw", "Vibro-Claw"),
		misc("BACargoLifter", "Cargo Lifter"),
	} {
		m.Manipulator = true
		types = append(types, m)
	}
	for _, ap := range []*EquipmentType{
		weapon("ISBAAPGaussRifle", "AP Gauss Rifle", ""),
		weapon("ISBAMG", "Machine Gun (BA)", ""),
		weapon("ISBAFlamer", "Flamer (BA)", ""),
		weapon("ISBASmallLaser", "Small Laser (BA)", ""),
	} {
		ap.AntiPersonnel = true
		types = append(types, ap)
	}
	types = append(types,
		weapon("ISBASRM4", "SRM 4 (BA)", ""),
		misc("BAAPMount", "Anti-Personnel Weapon Mount"),
		misc("BAMEA", "Modular Equipment Adaptor"),
	)

	for _, b := range bombTypes {
		types = append(types, &EquipmentType{InternalName: b, Name: b, Kind: KindBomb})
	}

	for _, t := range types {
		RegisterEquipment(t)
	}
}
