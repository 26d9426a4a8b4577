package domain

// Closed enumerations. Each type decodes strictly against its table;
// an unrecognised tag is an *UnknownEnumError.

// ShipNavStatus is where a ship is relative to its waypoint.
type ShipNavStatus string

const (
	NavStatusInTransit ShipNavStatus = "IN_TRANSIT"
	NavStatusInOrbit   ShipNavStatus = "IN_ORBIT"
	NavStatusDocked    ShipNavStatus = "DOCKED"
)

var shipNavStatusTags = newEnumSet("ship nav status",
	NavStatusInTransit, NavStatusInOrbit, NavStatusDocked,
)

// ParseShipNavStatus validates a wire tag.
func ParseShipNavStatus(raw string) (ShipNavStatus, error) { return shipNavStatusTags.parse(raw) }

// ShipNavStatusValues lists every known tag in declaration order.
func ShipNavStatusValues() []ShipNavStatus { return shipNavStatusTags.all() }

func (v ShipNavStatus) Valid() bool { return shipNavStatusTags.contains(v) }

func (v ShipNavStatus) MarshalJSON() ([]byte, error) { return shipNavStatusTags.marshal(v) }

func (v *ShipNavStatus) UnmarshalJSON(data []byte) error { return shipNavStatusTags.unmarshal(data, v) }

// FlightMode is the wire tag for a flight mode.
type FlightMode string

const (
	FlightModeDrift   FlightMode = "DRIFT"
	FlightModeStealth FlightMode = "STEALTH"
	FlightModeCruise  FlightMode = "CRUISE"
	FlightModeBurn    FlightMode = "BURN"
)

var flightModeTags = newEnumSet("flight mode",
	FlightModeDrift, FlightModeStealth, FlightModeCruise, FlightModeBurn,
)

// ParseFlightMode validates a wire tag.
func ParseFlightMode(raw string) (FlightMode, error) { return flightModeTags.parse(raw) }

// FlightModeValues lists every known tag in declaration order.
func FlightModeValues() []FlightMode { return flightModeTags.all() }

func (v FlightMode) Valid() bool { return flightModeTags.contains(v) }

func (v FlightMode) MarshalJSON() ([]byte, error) { return flightModeTags.marshal(v) }

func (v *FlightMode) UnmarshalJSON(data []byte) error { return flightModeTags.unmarshal(data, v) }

// CrewRotation is the wire tag for a crew rotation.
type CrewRotation string

const (
	RotationStrict  CrewRotation = "STRICT"
	RotationRelaxed CrewRotation = "RELAXED"
)

var crewRotationTags = newEnumSet("crew rotation",
	RotationStrict, RotationRelaxed,
)

// ParseCrewRotation validates a wire tag.
func ParseCrewRotation(raw string) (CrewRotation, error) { return crewRotationTags.parse(raw) }

// CrewRotationValues lists every known tag in declaration order.
func CrewRotationValues() []CrewRotation { return crewRotationTags.all() }

func (v CrewRotation) Valid() bool { return crewRotationTags.contains(v) }

func (v CrewRotation) MarshalJSON() ([]byte, error) { return crewRotationTags.marshal(v) }

func (v *CrewRotation) UnmarshalJSON(data []byte) error { return crewRotationTags.unmarshal(data, v) }

// ShipRole is the wire tag for a ship role.
type ShipRole string

const (
	RoleFabricator  ShipRole = "FABRICATOR"
	RoleHarvester   ShipRole = "HARVESTER"
	RoleHauler      ShipRole = "HAULER"
	RoleInterceptor ShipRole = "INTERCEPTOR"
	RoleExcavator   ShipRole = "EXCAVATOR"
	RoleTransport   ShipRole = "TRANSPORT"
	RoleRepair      ShipRole = "REPAIR"
	RoleSurveyor    ShipRole = "SURVEYOR"
	RoleCommand     ShipRole = "COMMAND"
	RoleCarrier     ShipRole = "CARRIER"
	RolePatrol      ShipRole = "PATROL"
	RoleSatellite   ShipRole = "SATELLITE"
	RoleExplorer    ShipRole = "EXPLORER"
	RoleRefinery    ShipRole = "REFINERY"
)

var shipRoleTags = newEnumSet("ship role",
	RoleFabricator, RoleHarvester, RoleHauler, RoleInterceptor, RoleExcavator, RoleTransport,
	RoleRepair, RoleSurveyor, RoleCommand, RoleCarrier, RolePatrol, RoleSatellite, RoleExplorer,
	RoleRefinery,
)

// ParseShipRole validates a wire tag.
func ParseShipRole(raw string) (ShipRole, error) { return shipRoleTags.parse(raw) }

// ShipRoleValues lists every known tag in declaration order.
func ShipRoleValues() []ShipRole { return shipRoleTags.all() }

func (v ShipRole) Valid() bool { return shipRoleTags.contains(v) }

func (v ShipRole) MarshalJSON() ([]byte, error) { return shipRoleTags.marshal(v) }

func (v *ShipRole) UnmarshalJSON(data []byte) error { return shipRoleTags.unmarshal(data, v) }

// FrameSymbol is the wire tag for a frame symbol.
type FrameSymbol string

const (
	FrameProbe          FrameSymbol = "FRAME_PROBE"
	FrameDrone          FrameSymbol = "FRAME_DRONE"
	FrameInterceptor    FrameSymbol = "FRAME_INTERCEPTOR"
	FrameRacer          FrameSymbol = "FRAME_RACER"
	FrameFighter        FrameSymbol = "FRAME_FIGHTER"
	FrameFrigate        FrameSymbol = "FRAME_FRIGATE"
	FrameShuttle        FrameSymbol = "FRAME_SHUTTLE"
	FrameExplorer       FrameSymbol = "FRAME_EXPLORER"
	FrameMiner          FrameSymbol = "FRAME_MINER"
	FrameLightFreighter FrameSymbol = "FRAME_LIGHT_FREIGHTER"
	FrameHeavyFreighter FrameSymbol = "FRAME_HEAVY_FREIGHTER"
	FrameTransport      FrameSymbol = "FRAME_TRANSPORT"
	FrameDestroyer      FrameSymbol = "FRAME_DESTROYER"
	FrameCruiser        FrameSymbol = "FRAME_CRUISER"
	FrameCarrier        FrameSymbol = "FRAME_CARRIER"
)

var frameSymbolTags = newEnumSet("frame symbol",
	FrameProbe, FrameDrone, FrameInterceptor, FrameRacer, FrameFighter, FrameFrigate, FrameShuttle,
	FrameExplorer, FrameMiner, FrameLightFreighter, FrameHeavyFreighter, FrameTransport,
	FrameDestroyer, FrameCruiser, FrameCarrier,
)

// ParseFrameSymbol validates a wire tag.
func ParseFrameSymbol(raw string) (FrameSymbol, error) { return frameSymbolTags.parse(raw) }

// FrameSymbolValues lists every known tag in declaration order.
func FrameSymbolValues() []FrameSymbol { return frameSymbolTags.all() }

func (v FrameSymbol) Valid() bool { return frameSymbolTags.contains(v) }

func (v FrameSymbol) MarshalJSON() ([]byte, error) { return frameSymbolTags.marshal(v) }

func (v *FrameSymbol) UnmarshalJSON(data []byte) error { return frameSymbolTags.unmarshal(data, v) }

// ReactorSymbol is the wire tag for a reactor symbol.
type ReactorSymbol string

const (
	ReactorSolarI      ReactorSymbol = "REACTOR_SOLAR_I"
	ReactorFusionI     ReactorSymbol = "REACTOR_FUSION_I"
	ReactorFissionI    ReactorSymbol = "REACTOR_FISSION_I"
	ReactorChemicalI   ReactorSymbol = "REACTOR_CHEMICAL_I"
	ReactorAntimatterI ReactorSymbol = "REACTOR_ANTIMATTER_I"
)

var reactorSymbolTags = newEnumSet("reactor symbol",
	ReactorSolarI, ReactorFusionI, ReactorFissionI, ReactorChemicalI, ReactorAntimatterI,
)

// ParseReactorSymbol validates a wire tag.
func ParseReactorSymbol(raw string) (ReactorSymbol, error) { return reactorSymbolTags.parse(raw) }

// ReactorSymbolValues lists every known tag in declaration order.
func ReactorSymbolValues() []ReactorSymbol { return reactorSymbolTags.all() }

func (v ReactorSymbol) Valid() bool { return reactorSymbolTags.contains(v) }

func (v ReactorSymbol) MarshalJSON() ([]byte, error) { return reactorSymbolTags.marshal(v) }

func (v *ReactorSymbol) UnmarshalJSON(data []byte) error { return reactorSymbolTags.unmarshal(data, v) }

// EngineSymbol is the wire tag for a engine symbol.
type EngineSymbol string

const (
	EngineImpulseDriveI EngineSymbol = "ENGINE_IMPULSE_DRIVE_I"
	EngineIonDriveI     EngineSymbol = "ENGINE_ION_DRIVE_I"
	EngineIonDriveII    EngineSymbol = "ENGINE_ION_DRIVE_II"
	EngineHyperDriveI   EngineSymbol = "ENGINE_HYPER_DRIVE_I"
)

var engineSymbolTags = newEnumSet("engine symbol",
	EngineImpulseDriveI, EngineIonDriveI, EngineIonDriveII, EngineHyperDriveI,
)

// ParseEngineSymbol validates a wire tag.
func ParseEngineSymbol(raw string) (EngineSymbol, error) { return engineSymbolTags.parse(raw) }

// EngineSymbolValues lists every known tag in declaration order.
func EngineSymbolValues() []EngineSymbol { return engineSymbolTags.all() }

func (v EngineSymbol) Valid() bool { return engineSymbolTags.contains(v) }

func (v EngineSymbol) MarshalJSON() ([]byte, error) { return engineSymbolTags.marshal(v) }

func (v *EngineSymbol) UnmarshalJSON(data []byte) error { return engineSymbolTags.unmarshal(data, v) }

// ModuleSymbol is the wire tag for a module symbol.
type ModuleSymbol string

const (
	ModuleMineralProcessorI ModuleSymbol = "MODULE_MINERAL_PROCESSOR_I"
	ModuleCargoHoldI        ModuleSymbol = "MODULE_CARGO_HOLD_I"
	ModuleCrewQuartersI     ModuleSymbol = "MODULE_CREW_QUARTERS_I"
	ModuleEnvoyQuartersI    ModuleSymbol = "MODULE_ENVOY_QUARTERS_I"
	ModulePassengerCabinI   ModuleSymbol = "MODULE_PASSENGER_CABIN_I"
	ModuleMicroRefineryI    ModuleSymbol = "MODULE_MICRO_REFINERY_I"
	ModuleOreRefineryI      ModuleSymbol = "MODULE_ORE_REFINERY_I"
	ModuleFuelRefineryI     ModuleSymbol = "MODULE_FUEL_REFINERY_I"
	ModuleScienceLabI       ModuleSymbol = "MODULE_SCIENCE_LAB_I"
	ModuleJumpDriveI        ModuleSymbol = "MODULE_JUMP_DRIVE_I"
	ModuleJumpDriveII       ModuleSymbol = "MODULE_JUMP_DRIVE_II"
	ModuleJumpDriveIII      ModuleSymbol = "MODULE_JUMP_DRIVE_III"
	ModuleWarpDriveI        ModuleSymbol = "MODULE_WARP_DRIVE_I"
	ModuleWarpDriveII       ModuleSymbol = "MODULE_WARP_DRIVE_II"
	ModuleWarpDriveIII      ModuleSymbol = "MODULE_WARP_DRIVE_III"
	ModuleShieldGeneratorI  ModuleSymbol = "MODULE_SHIELD_GENERATOR_I"
	ModuleShieldGeneratorII ModuleSymbol = "MODULE_SHIELD_GENERATOR_II"
)

var moduleSymbolTags = newEnumSet("module symbol",
	ModuleMineralProcessorI, ModuleCargoHoldI, ModuleCrewQuartersI, ModuleEnvoyQuartersI,
	ModulePassengerCabinI, ModuleMicroRefineryI, ModuleOreRefineryI, ModuleFuelRefineryI,
	ModuleScienceLabI, ModuleJumpDriveI, ModuleJumpDriveII, ModuleJumpDriveIII, ModuleWarpDriveI,
	ModuleWarpDriveII, ModuleWarpDriveIII, ModuleShieldGeneratorI, ModuleShieldGeneratorII,
)

// ParseModuleSymbol validates a wire tag.
func ParseModuleSymbol(raw string) (ModuleSymbol, error) { return moduleSymbolTags.parse(raw) }

// ModuleSymbolValues lists every known tag in declaration order.
func ModuleSymbolValues() []ModuleSymbol { return moduleSymbolTags.all() }

func (v ModuleSymbol) Valid() bool { return moduleSymbolTags.contains(v) }

func (v ModuleSymbol) MarshalJSON() ([]byte, error) { return moduleSymbolTags.marshal(v) }

func (v *ModuleSymbol) UnmarshalJSON(data []byte) error { return moduleSymbolTags.unmarshal(data, v) }

// MountSymbol is the wire tag for a mount symbol.
type MountSymbol string

const (
	MountGasSiphonI       MountSymbol = "MOUNT_GAS_SIPHON_I"
	MountGasSiphonII      MountSymbol = "MOUNT_GAS_SIPHON_II"
	MountGasSiphonIII     MountSymbol = "MOUNT_GAS_SIPHON_III"
	MountSurveyorI        MountSymbol = "MOUNT_SURVEYOR_I"
	MountSurveyorII       MountSymbol = "MOUNT_SURVEYOR_II"
	MountSurveyorIII      MountSymbol = "MOUNT_SURVEYOR_III"
	MountSensorArrayI     MountSymbol = "MOUNT_SENSOR_ARRAY_I"
	MountSensorArrayII    MountSymbol = "MOUNT_SENSOR_ARRAY_II"
	MountSensorArrayIII   MountSymbol = "MOUNT_SENSOR_ARRAY_III"
	MountMiningLaserI     MountSymbol = "MOUNT_MINING_LASER_I"
	MountMiningLaserII    MountSymbol = "MOUNT_MINING_LASER_II"
	MountMiningLaserIII   MountSymbol = "MOUNT_MINING_LASER_III"
	MountLaserCannonI     MountSymbol = "MOUNT_LASER_CANNON_I"
	MountMissileLauncherI MountSymbol = "MOUNT_MISSILE_LAUNCHER_I"
	MountTurretI          MountSymbol = "MOUNT_TURRET_I"
)

var mountSymbolTags = newEnumSet("mount symbol",
	MountGasSiphonI, MountGasSiphonII, MountGasSiphonIII, MountSurveyorI, MountSurveyorII,
	MountSurveyorIII, MountSensorArrayI, MountSensorArrayII, MountSensorArrayIII, MountMiningLaserI,
	MountMiningLaserII, MountMiningLaserIII, MountLaserCannonI, MountMissileLauncherI, MountTurretI,
)

// ParseMountSymbol validates a wire tag.
func ParseMountSymbol(raw string) (MountSymbol, error) { return mountSymbolTags.parse(raw) }

// MountSymbolValues lists every known tag in declaration order.
func MountSymbolValues() []MountSymbol { return mountSymbolTags.all() }

func (v MountSymbol) Valid() bool { return mountSymbolTags.contains(v) }

func (v MountSymbol) MarshalJSON() ([]byte, error) { return mountSymbolTags.marshal(v) }

func (v *MountSymbol) UnmarshalJSON(data []byte) error { return mountSymbolTags.unmarshal(data, v) }

// Deposit is a resource a surveyor mount can detect.
type Deposit string

const (
	DepositQuartzSand      Deposit = "QUARTZ_SAND"
	DepositSiliconCrystals Deposit = "SILICON_CRYSTALS"
	DepositPreciousStones  Deposit = "PRECIOUS_STONES"
	DepositIceWater        Deposit = "ICE_WATER"
	DepositAmmoniaIce      Deposit = "AMMONIA_ICE"
	DepositIronOre         Deposit = "IRON_ORE"
	DepositCopperOre       Deposit = "COPPER_ORE"
	DepositSilverOre       Deposit = "SILVER_ORE"
	DepositAluminumOre     Deposit = "ALUMINUM_ORE"
	DepositGoldOre         Deposit = "GOLD_ORE"
	DepositPlatinumOre     Deposit = "PLATINUM_ORE"
	DepositDiamonds        Deposit = "DIAMONDS"
	DepositUraniteOre      Deposit = "URANITE_ORE"
	DepositMeritiumOre     Deposit = "MERITIUM_ORE"
)

var depositTags = newEnumSet("deposit",
	DepositQuartzSand, DepositSiliconCrystals, DepositPreciousStones, DepositIceWater, DepositAmmoniaIce, DepositIronOre, DepositCopperOre, DepositSilverOre,
	DepositAluminumOre, DepositGoldOre, DepositPlatinumOre, DepositDiamonds, DepositUraniteOre, DepositMeritiumOre,
)

// ParseDeposit validates a wire tag.
func ParseDeposit(raw string) (Deposit, error) { return depositTags.parse(raw) }

// DepositValues lists every known tag in declaration order.
func DepositValues() []Deposit { return depositTags.all() }

func (v Deposit) Valid() bool { return depositTags.contains(v) }

func (v Deposit) MarshalJSON() ([]byte, error) { return depositTags.marshal(v) }

func (v *Deposit) UnmarshalJSON(data []byte) error { return depositTags.unmarshal(data, v) }

// ContractType is the wire tag for a contract type.
type ContractType string

const (
	ContractProcurement ContractType = "PROCUREMENT"
	ContractTransport   ContractType = "TRANSPORT"
	ContractShuttle     ContractType = "SHUTTLE"
)

var contractTypeTags = newEnumSet("contract type",
	ContractProcurement, ContractTransport, ContractShuttle,
)

// ParseContractType validates a wire tag.
func ParseContractType(raw string) (ContractType, error) { return contractTypeTags.parse(raw) }

// ContractTypeValues lists every known tag in declaration order.
func ContractTypeValues() []ContractType { return contractTypeTags.all() }

func (v ContractType) Valid() bool { return contractTypeTags.contains(v) }

func (v ContractType) MarshalJSON() ([]byte, error) { return contractTypeTags.marshal(v) }

func (v *ContractType) UnmarshalJSON(data []byte) error { return contractTypeTags.unmarshal(data, v) }

// FactionSymbol is the wire tag for a faction symbol.
type FactionSymbol string

const (
	FactionCosmic   FactionSymbol = "COSMIC"
	FactionVoid     FactionSymbol = "VOID"
	FactionGalactic FactionSymbol = "GALACTIC"
	FactionQuantum  FactionSymbol = "QUANTUM"
	FactionDominion FactionSymbol = "DOMINION"
)

var factionSymbolTags = newEnumSet("faction symbol",
	FactionCosmic, FactionVoid, FactionGalactic, FactionQuantum, FactionDominion,
)

// ParseFactionSymbol validates a wire tag.
func ParseFactionSymbol(raw string) (FactionSymbol, error) { return factionSymbolTags.parse(raw) }

// FactionSymbolValues lists every known tag in declaration order.
func FactionSymbolValues() []FactionSymbol { return factionSymbolTags.all() }

func (v FactionSymbol) Valid() bool { return factionSymbolTags.contains(v) }

func (v FactionSymbol) MarshalJSON() ([]byte, error) { return factionSymbolTags.marshal(v) }

func (v *FactionSymbol) UnmarshalJSON(data []byte) error { return factionSymbolTags.unmarshal(data, v) }

// FactionTraitSymbol is the wire tag for a faction trait.
type FactionTraitSymbol string

const (
	TraitBureaucratic            FactionTraitSymbol = "BUREAUCRATIC"
	TraitSecretive               FactionTraitSymbol = "SECRETIVE"
	TraitCapitalistic            FactionTraitSymbol = "CAPITALISTIC"
	TraitIndustrious             FactionTraitSymbol = "INDUSTRIOUS"
	TraitPeaceful                FactionTraitSymbol = "PEACEFUL"
	TraitDistrustful             FactionTraitSymbol = "DISTRUSTFUL"
	TraitWelcoming               FactionTraitSymbol = "WELCOMING"
	TraitAnarchist               FactionTraitSymbol = "ANARCHIST"
	TraitConflicted              FactionTraitSymbol = "CONFLICTED"
	TraitAuthoritarian           FactionTraitSymbol = "AUTHORITARIAN"
	TraitOligarchical            FactionTraitSymbol = "OLIGARCHICAL"
	TraitDynastic                FactionTraitSymbol = "DYNASTIC"
	TraitDemocractic             FactionTraitSymbol = "DEMOCRACTIC"
	TraitDecentralized           FactionTraitSymbol = "DECENTRALIZED"
	TraitSmugglers               FactionTraitSymbol = "SMUGGLERS"
	TraitScavengers              FactionTraitSymbol = "SCAVENGERS"
	TraitRebellious              FactionTraitSymbol = "REBELLIOUS"
	TraitExiles                  FactionTraitSymbol = "EXILES"
	TraitPirates                 FactionTraitSymbol = "PIRATES"
	TraitRaiders                 FactionTraitSymbol = "RAIDERS"
	TraitClan                    FactionTraitSymbol = "CLAN"
	TraitGuild                   FactionTraitSymbol = "GUILD"
	TraitDominion                FactionTraitSymbol = "DOMINION"
	TraitFringe                  FactionTraitSymbol = "FRINGE"
	TraitForsaken                FactionTraitSymbol = "FORSAKEN"
	TraitIsolated                FactionTraitSymbol = "ISOLATED"
	TraitLocalized               FactionTraitSymbol = "LOCALIZED"
	TraitEstablished             FactionTraitSymbol = "ESTABLISHED"
	TraitNotable                 FactionTraitSymbol = "NOTABLE"
	TraitDominant                FactionTraitSymbol = "DOMINANT"
	TraitInescapable             FactionTraitSymbol = "INESCAPABLE"
	TraitInnovative              FactionTraitSymbol = "INNOVATIVE"
	TraitBold                    FactionTraitSymbol = "BOLD"
	TraitVisionary               FactionTraitSymbol = "VISIONARY"
	TraitCurious                 FactionTraitSymbol = "CURIOUS"
	TraitDaring                  FactionTraitSymbol = "DARING"
	TraitExploratory             FactionTraitSymbol = "EXPLORATORY"
	TraitResourceful             FactionTraitSymbol = "RESOURCEFUL"
	TraitFlexible                FactionTraitSymbol = "FLEXIBLE"
	TraitCooperative             FactionTraitSymbol = "COOPERATIVE"
	TraitUnited                  FactionTraitSymbol = "UNITED"
	TraitStrategic               FactionTraitSymbol = "STRATEGIC"
	TraitIntelligent             FactionTraitSymbol = "INTELLIGENT"
	TraitResearchFocused         FactionTraitSymbol = "RESEARCH_FOCUSED"
	TraitCollaborative           FactionTraitSymbol = "COLLABORATIVE"
	TraitProgressive             FactionTraitSymbol = "PROGRESSIVE"
	TraitMilitaristic            FactionTraitSymbol = "MILITARISTIC"
	TraitTechnologicallyAdvanced FactionTraitSymbol = "TECHNOLOGICALLY_ADVANCED"
	TraitAggressive              FactionTraitSymbol = "AGGRESSIVE"
	TraitImperialistic           FactionTraitSymbol = "IMPERIALISTIC"
	TraitTreasureHunters         FactionTraitSymbol = "TREASURE_HUNTERS"
	TraitDexterous               FactionTraitSymbol = "DEXTEROUS"
	TraitUnpredictable           FactionTraitSymbol = "UNPREDICTABLE"
	TraitBrutal                  FactionTraitSymbol = "BRUTAL"
	TraitFleeting                FactionTraitSymbol = "FLEETING"
	TraitAdaptable               FactionTraitSymbol = "ADAPTABLE"
	TraitSelfSufficient          FactionTraitSymbol = "SELF_SUFFICIENT"
	TraitDefensive               FactionTraitSymbol = "DEFENSIVE"
	TraitProud                   FactionTraitSymbol = "PROUD"
	TraitDiverse                 FactionTraitSymbol = "DIVERSE"
	TraitIndependent             FactionTraitSymbol = "INDEPENDENT"
	TraitSelfInterested          FactionTraitSymbol = "SELF_INTERESTED"
	TraitFragmented              FactionTraitSymbol = "FRAGMENTED"
	TraitCommercial              FactionTraitSymbol = "COMMERCIAL"
	TraitFreeMarkets             FactionTraitSymbol = "FREE_MARKETS"
	TraitEntrepreneurial         FactionTraitSymbol = "ENTREPRENEURIAL"
)

var factionTraitSymbolTags = newEnumSet("faction trait",
	TraitBureaucratic, TraitSecretive, TraitCapitalistic, TraitIndustrious, TraitPeaceful,
	TraitDistrustful, TraitWelcoming, TraitAnarchist, TraitConflicted, TraitAuthoritarian,
	TraitOligarchical, TraitDynastic, TraitDemocractic, TraitDecentralized, TraitSmugglers,
	TraitScavengers, TraitRebellious, TraitExiles, TraitPirates, TraitRaiders, TraitClan, TraitGuild,
	TraitDominion, TraitFringe, TraitForsaken, TraitIsolated, TraitLocalized, TraitEstablished,
	TraitNotable, TraitDominant, TraitInescapable, TraitInnovative, TraitBold, TraitVisionary,
	TraitCurious, TraitDaring, TraitExploratory, TraitResourceful, TraitFlexible, TraitCooperative,
	TraitUnited, TraitStrategic, TraitIntelligent, TraitResearchFocused, TraitCollaborative,
	TraitProgressive, TraitMilitaristic, TraitTechnologicallyAdvanced, TraitAggressive,
	TraitImperialistic, TraitTreasureHunters, TraitDexterous, TraitUnpredictable, TraitBrutal,
	TraitFleeting, TraitAdaptable, TraitSelfSufficient, TraitDefensive, TraitProud, TraitDiverse,
	TraitIndependent, TraitSelfInterested, TraitFragmented, TraitCommercial, TraitFreeMarkets,
	TraitEntrepreneurial,
)

// ParseFactionTraitSymbol validates a wire tag.
func ParseFactionTraitSymbol(raw string) (FactionTraitSymbol, error) { return factionTraitSymbolTags.parse(raw) }

// FactionTraitSymbolValues lists every known tag in declaration order.
func FactionTraitSymbolValues() []FactionTraitSymbol { return factionTraitSymbolTags.all() }

func (v FactionTraitSymbol) Valid() bool { return factionTraitSymbolTags.contains(v) }

func (v FactionTraitSymbol) MarshalJSON() ([]byte, error) { return factionTraitSymbolTags.marshal(v) }

func (v *FactionTraitSymbol) UnmarshalJSON(data []byte) error { return factionTraitSymbolTags.unmarshal(data, v) }

// WaypointType is the wire tag for a waypoint type.
type WaypointType string

const (
	WaypointPlanet         WaypointType = "PLANET"
	WaypointGasGiant       WaypointType = "GAS_GIANT"
	WaypointMoon           WaypointType = "MOON"
	WaypointOrbitalStation WaypointType = "ORBITAL_STATION"
	WaypointJumpGate       WaypointType = "JUMP_GATE"
	WaypointAsteroidField  WaypointType = "ASTEROID_FIELD"
	WaypointNebula         WaypointType = "NEBULA"
	WaypointDebrisField    WaypointType = "DEBRIS_FIELD"
	WaypointGravityWell    WaypointType = "GRAVITY_WELL"
)

var waypointTypeTags = newEnumSet("waypoint type",
	WaypointPlanet, WaypointGasGiant, WaypointMoon, WaypointOrbitalStation, WaypointJumpGate,
	WaypointAsteroidField, WaypointNebula, WaypointDebrisField, WaypointGravityWell,
)

// ParseWaypointType validates a wire tag.
func ParseWaypointType(raw string) (WaypointType, error) { return waypointTypeTags.parse(raw) }

// WaypointTypeValues lists every known tag in declaration order.
func WaypointTypeValues() []WaypointType { return waypointTypeTags.all() }

func (v WaypointType) Valid() bool { return waypointTypeTags.contains(v) }

func (v WaypointType) MarshalJSON() ([]byte, error) { return waypointTypeTags.marshal(v) }

func (v *WaypointType) UnmarshalJSON(data []byte) error { return waypointTypeTags.unmarshal(data, v) }

// WaypointTraitSymbol is the wire tag for a waypoint trait.
type WaypointTraitSymbol string

const (
	WaypointTraitUncharted             WaypointTraitSymbol = "UNCHARTED"
	WaypointTraitMarketplace           WaypointTraitSymbol = "MARKETPLACE"
	WaypointTraitShipyard              WaypointTraitSymbol = "SHIPYARD"
	WaypointTraitOutpost               WaypointTraitSymbol = "OUTPOST"
	WaypointTraitScatteredSettlements  WaypointTraitSymbol = "SCATTERED_SETTLEMENTS"
	WaypointTraitSprawlingCities       WaypointTraitSymbol = "SPRAWLING_CITIES"
	WaypointTraitMegaStructures        WaypointTraitSymbol = "MEGA_STRUCTURES"
	WaypointTraitOvercrowded           WaypointTraitSymbol = "OVERCROWDED"
	WaypointTraitHighTech              WaypointTraitSymbol = "HIGH_TECH"
	WaypointTraitCorrupt               WaypointTraitSymbol = "CORRUPT"
	WaypointTraitBureaucratic          WaypointTraitSymbol = "BUREAUCRATIC"
	WaypointTraitTradingHub            WaypointTraitSymbol = "TRADING_HUB"
	WaypointTraitIndustrial            WaypointTraitSymbol = "INDUSTRIAL"
	WaypointTraitBlackMarket           WaypointTraitSymbol = "BLACK_MARKET"
	WaypointTraitResearchFacility      WaypointTraitSymbol = "RESEARCH_FACILITY"
	WaypointTraitMilitaryBase          WaypointTraitSymbol = "MILITARY_BASE"
	WaypointTraitSurveillanceOutpost   WaypointTraitSymbol = "SURVEILLANCE_OUTPOST"
	WaypointTraitExplorationOutpost    WaypointTraitSymbol = "EXPLORATION_OUTPOST"
	WaypointTraitMineralDeposits       WaypointTraitSymbol = "MINERAL_DEPOSITS"
	WaypointTraitCommonMetalDeposits   WaypointTraitSymbol = "COMMON_METAL_DEPOSITS"
	WaypointTraitPreciousMetalDeposits WaypointTraitSymbol = "PRECIOUS_METAL_DEPOSITS"
	WaypointTraitRareMetalDeposits     WaypointTraitSymbol = "RARE_METAL_DEPOSITS"
	WaypointTraitMethanePools          WaypointTraitSymbol = "METHANE_POOLS"
	WaypointTraitIceCrystals           WaypointTraitSymbol = "ICE_CRYSTALS"
	WaypointTraitExplosiveGases        WaypointTraitSymbol = "EXPLOSIVE_GASES"
	WaypointTraitStrongMagnetosphere   WaypointTraitSymbol = "STRONG_MAGNETOSPHERE"
	WaypointTraitVibrantAuroras        WaypointTraitSymbol = "VIBRANT_AURORAS"
	WaypointTraitSaltFlats             WaypointTraitSymbol = "SALT_FLATS"
	WaypointTraitCanyons               WaypointTraitSymbol = "CANYONS"
	WaypointTraitPerpetualDaylight     WaypointTraitSymbol = "PERPETUAL_DAYLIGHT"
	WaypointTraitPerpetualOvercast     WaypointTraitSymbol = "PERPETUAL_OVERCAST"
	WaypointTraitDrySeabeds            WaypointTraitSymbol = "DRY_SEABEDS"
	WaypointTraitMagmaSeas             WaypointTraitSymbol = "MAGMA_SEAS"
	WaypointTraitSupervolcanoes        WaypointTraitSymbol = "SUPERVOLCANOES"
	WaypointTraitAshClouds             WaypointTraitSymbol = "ASH_CLOUDS"
	WaypointTraitVastRuins             WaypointTraitSymbol = "VAST_RUINS"
	WaypointTraitMutatedFlora          WaypointTraitSymbol = "MUTATED_FLORA"
	WaypointTraitTerraformed           WaypointTraitSymbol = "TERRAFORMED"
	WaypointTraitExtremeTemperatures   WaypointTraitSymbol = "EXTREME_TEMPERATURES"
	WaypointTraitExtremePressure       WaypointTraitSymbol = "EXTREME_PRESSURE"
	WaypointTraitDiverseLife           WaypointTraitSymbol = "DIVERSE_LIFE"
	WaypointTraitScarceLife            WaypointTraitSymbol = "SCARCE_LIFE"
	WaypointTraitFossils               WaypointTraitSymbol = "FOSSILS"
	WaypointTraitWeakGravity           WaypointTraitSymbol = "WEAK_GRAVITY"
	WaypointTraitStrongGravity         WaypointTraitSymbol = "STRONG_GRAVITY"
	WaypointTraitCrushingGravity       WaypointTraitSymbol = "CRUSHING_GRAVITY"
	WaypointTraitToxicAtmosphere       WaypointTraitSymbol = "TOXIC_ATMOSPHERE"
	WaypointTraitCorrosiveAtmosphere   WaypointTraitSymbol = "CORROSIVE_ATMOSPHERE"
	WaypointTraitBreathableAtmosphere  WaypointTraitSymbol = "BREATHABLE_ATMOSPHERE"
	WaypointTraitJovian                WaypointTraitSymbol = "JOVIAN"
	WaypointTraitRocky                 WaypointTraitSymbol = "ROCKY"
	WaypointTraitVolcanic              WaypointTraitSymbol = "VOLCANIC"
	WaypointTraitFrozen                WaypointTraitSymbol = "FROZEN"
	WaypointTraitSwamp                 WaypointTraitSymbol = "SWAMP"
	WaypointTraitBarren                WaypointTraitSymbol = "BARREN"
	WaypointTraitTemperate             WaypointTraitSymbol = "TEMPERATE"
	WaypointTraitJungle                WaypointTraitSymbol = "JUNGLE"
	WaypointTraitOcean                 WaypointTraitSymbol = "OCEAN"
	WaypointTraitStripped              WaypointTraitSymbol = "STRIPPED"
)

var waypointTraitSymbolTags = newEnumSet("waypoint trait",
	WaypointTraitUncharted, WaypointTraitMarketplace, WaypointTraitShipyard, WaypointTraitOutpost,
	WaypointTraitScatteredSettlements, WaypointTraitSprawlingCities, WaypointTraitMegaStructures,
	WaypointTraitOvercrowded, WaypointTraitHighTech, WaypointTraitCorrupt, WaypointTraitBureaucratic,
	WaypointTraitTradingHub, WaypointTraitIndustrial, WaypointTraitBlackMarket,
	WaypointTraitResearchFacility, WaypointTraitMilitaryBase, WaypointTraitSurveillanceOutpost,
	WaypointTraitExplorationOutpost, WaypointTraitMineralDeposits, WaypointTraitCommonMetalDeposits,
	WaypointTraitPreciousMetalDeposits, WaypointTraitRareMetalDeposits, WaypointTraitMethanePools,
	WaypointTraitIceCrystals, WaypointTraitExplosiveGases, WaypointTraitStrongMagnetosphere,
	WaypointTraitVibrantAuroras, WaypointTraitSaltFlats, WaypointTraitCanyons,
	WaypointTraitPerpetualDaylight, WaypointTraitPerpetualOvercast, WaypointTraitDrySeabeds,
	WaypointTraitMagmaSeas, WaypointTraitSupervolcanoes, WaypointTraitAshClouds,
	WaypointTraitVastRuins, WaypointTraitMutatedFlora, WaypointTraitTerraformed,
	WaypointTraitExtremeTemperatures, WaypointTraitExtremePressure, WaypointTraitDiverseLife,
	WaypointTraitScarceLife, WaypointTraitFossils, WaypointTraitWeakGravity,
	WaypointTraitStrongGravity, WaypointTraitCrushingGravity, WaypointTraitToxicAtmosphere,
	WaypointTraitCorrosiveAtmosphere, WaypointTraitBreathableAtmosphere, WaypointTraitJovian,
	WaypointTraitRocky, WaypointTraitVolcanic, WaypointTraitFrozen, WaypointTraitSwamp,
	WaypointTraitBarren, WaypointTraitTemperate, WaypointTraitJungle, WaypointTraitOcean,
	WaypointTraitStripped,
)

// ParseWaypointTraitSymbol validates a wire tag.
func ParseWaypointTraitSymbol(raw string) (WaypointTraitSymbol, error) { return waypointTraitSymbolTags.parse(raw) }

// WaypointTraitSymbolValues lists every known tag in declaration order.
func WaypointTraitSymbolValues() []WaypointTraitSymbol { return waypointTraitSymbolTags.all() }

func (v WaypointTraitSymbol) Valid() bool { return waypointTraitSymbolTags.contains(v) }

func (v WaypointTraitSymbol) MarshalJSON() ([]byte, error) { return waypointTraitSymbolTags.marshal(v) }

func (v *WaypointTraitSymbol) UnmarshalJSON(data []byte) error { return waypointTraitSymbolTags.unmarshal(data, v) }

// ShipType is a hull a shipyard can sell.
type ShipType string

const (
	ShipProbe             ShipType = "SHIP_PROBE"
	ShipMiningDrone       ShipType = "SHIP_MINING_DRONE"
	ShipInterceptor       ShipType = "SHIP_INTERCEPTOR"
	ShipLightHauler       ShipType = "SHIP_LIGHT_HAULER"
	ShipCommandFrigate    ShipType = "SHIP_COMMAND_FRIGATE"
	ShipExplorer          ShipType = "SHIP_EXPLORER"
	ShipHeavyFreighter    ShipType = "SHIP_HEAVY_FREIGHTER"
	ShipLightShuttle      ShipType = "SHIP_LIGHT_SHUTTLE"
	ShipOreHound          ShipType = "SHIP_ORE_HOUND"
	ShipRefiningFreighter ShipType = "SHIP_REFINING_FREIGHTER"
)

var shipTypeTags = newEnumSet("ship type",
	ShipProbe, ShipMiningDrone, ShipInterceptor, ShipLightHauler, ShipCommandFrigate, ShipExplorer,
	ShipHeavyFreighter, ShipLightShuttle, ShipOreHound, ShipRefiningFreighter,
)

// ParseShipType validates a wire tag.
func ParseShipType(raw string) (ShipType, error) { return shipTypeTags.parse(raw) }

// ShipTypeValues lists every known tag in declaration order.
func ShipTypeValues() []ShipType { return shipTypeTags.all() }

func (v ShipType) Valid() bool { return shipTypeTags.contains(v) }

func (v ShipType) MarshalJSON() ([]byte, error) { return shipTypeTags.marshal(v) }

func (v *ShipType) UnmarshalJSON(data []byte) error { return shipTypeTags.unmarshal(data, v) }

// SurveySize is the wire tag for a survey size.
type SurveySize string

const (
	SurveySmall    SurveySize = "SMALL"
	SurveyModerate SurveySize = "MODERATE"
	SurveyLarge    SurveySize = "LARGE"
)

var surveySizeTags = newEnumSet("survey size",
	SurveySmall, SurveyModerate, SurveyLarge,
)

// ParseSurveySize validates a wire tag.
func ParseSurveySize(raw string) (SurveySize, error) { return surveySizeTags.parse(raw) }

// SurveySizeValues lists every known tag in declaration order.
func SurveySizeValues() []SurveySize { return surveySizeTags.all() }

func (v SurveySize) Valid() bool { return surveySizeTags.contains(v) }

func (v SurveySize) MarshalJSON() ([]byte, error) { return surveySizeTags.marshal(v) }

func (v *SurveySize) UnmarshalJSON(data []byte) error { return surveySizeTags.unmarshal(data, v) }
