package data

// Built-in vault templates. External JSON files loaded over these use
// the same authoring form: terrain rows, optional spawn rows, and a
// monster-slot table indexed by digits in the spawn layer.

func mustVault(name string, kind VaultKind, rating, minDepth int, rows, spawnRows []string, monsters [10]string) *Vault {
	v, err := NewVault(name, kind, rating, minDepth, rows, spawnRows, monsters)
	if err != nil {
		panic(err)
	}
	return v
}

func builtinVaults() []*Vault {
	return []*Vault{
		mustVault("moated keep", KindLesser, 10, 5, []string{
			"%%%%%%%%%%%%%%%",
			"%AAAAAAAAAAAAA%",
			"%A###########A%",
			"%A#.........#A%",
			"%A#.#######.#A%",
			"%A#.D..*..G.#A%",
			"%A#.#######.#A%",
			"%A#.........#A%",
			"%A###########A%",
			"%AAAAAAAAAAAAA%",
			"%%%%%%%%%%%%%%%",
		}, []string{
			"               ",
			"               ",
			"               ",
			"  1.........1  ",
			"               ",
			"    2..&..2    ",
			"               ",
			"  1.........1  ",
			"               ",
			"               ",
			"               ",
		}, [10]string{"", "orc-warrior", "ogre"}),

		mustVault("bisected chamber", KindLesser, 8, 3, []string{
			"%%%%%%%%%%%%%",
			"%...........%",
			"%.####+####.%",
			"%.#.......#.%",
			"%.#.^...^.#.%",
			"%.####D####.%",
			"%...........%",
			"%%%%%%%%%%%%%",
		}, []string{
			"             ",
			"             ",
			"             ",
			"   1,...,1   ",
			"             ",
			"             ",
			"             ",
			"             ",
		}, [10]string{"", "orc"}),

		mustVault("crossed halls", KindGreater, 25, 20, []string{
			"%%%%%%%%%%%%%%%%%%%%%",
			"%.........#.........%",
			"%.#######.#.#######.%",
			"%.#&...#..+..#...&#.%",
			"%.#.X..G.....G..X.#.%",
			"%.#####..###..#####.%",
			"%....^...#E#...^....%",
			"%.#####..###..#####.%",
			"%.#.X..G.....G..X.#.%",
			"%.#$...#..+..#...$#.%",
			"%.#######.#.#######.%",
			"%.........#.........%",
			"%%%%%%%%%%%%%%%%%%%%%",
		}, []string{
			"                     ",
			" 1                 1 ",
			"                     ",
			"   *           *     ",
			"    3         3      ",
			"                     ",
			"     4       4       ",
			"                     ",
			"    3         3      ",
			"   *           *     ",
			"                     ",
			" 1                 1 ",
			"                     ",
		}, [10]string{"", "troll", "", "wraith", "ogre-chief"}),

		mustVault("web of the broodmother", KindThemed, 18, 15, []string{
			"%%%%%%%%%%%%%%%%%",
			"%VV...........VV%",
			"%V.#.#.#.#.#.#.V%",
			"%..#.#.#.#.#.#..%",
			"%.....#...#.....%",
			"%..#.#..S..#.#..%",
			"%.....#...#.....%",
			"%..#.#.#.#.#.#..%",
			"%V.#.#.#.#.#.#.V%",
			"%VV...........VV%",
			"%%%%%%%%%%%%%%%%%",
		}, []string{
			"                 ",
			" 1             1 ",
			"                 ",
			"    1       1    ",
			"                 ",
			"       2S2       ",
			"                 ",
			"    1       1    ",
			"                 ",
			" 1             1 ",
			"                 ",
		}, [10]string{"", "giant-spider", "phase-spider"}),

		mustVault("forgotten sanctum", KindSanctum, 35, 40, []string{
			"%%%%%%%%%%%%%%%%%%%",
			"%X...............X%",
			"%.XXXXXXX+XXXXXX..%",
			"%.X;;;;;;.;;;;;X..%",
			"%.X;#####G####;X..%",
			"%.X;#&..E...$#;X..%",
			"%.X;#####G####;X..%",
			"%.X;;;;;;.;;;;;X..%",
			"%.XXXXXXXXXXXXX...%",
			"%.................%",
			"%%%%%%%%%%%%%%%%%%%",
		}, []string{
			"                   ",
			"                   ",
			"                   ",
			"   5         5     ",
			"                   ",
			"    *  6   *       ",
			"                   ",
			"   5         5     ",
			"                   ",
			"                   ",
			"                   ",
		}, [10]string{"", "", "", "", "", "temple-guardian", "high-priest"}),

		mustVault("collector's folly", KindFolly, 22, 30, []string{
			"%%%%%%%%%%%%%%%",
			"%:::.......:::%",
			"%:#####D#####:%",
			"%.#,,,#.#!!!#.%",
			"%.#,,,G.G!!!#.%",
			"%.#,,,#.#!!!#.%",
			"%:#####^#####:%",
			"%:::...@...:::%",
			"%%%%%%%%%%%%%%%",
		}, []string{
			"               ",
			"               ",
			"               ",
			"  ,,,     !!!  ",
			"  ,,,  7  !!!  ",
			"  ,,,     !!!  ",
			"               ",
			"               ",
			"               ",
		}, [10]string{"", "", "", "", "", "", "", "mad-collector"}),

		mustVault("market row", KindTown, 0, 0, []string{
			"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIII",
			"I#####.#####.#####.#####.#####.#####I",
			"I#...#.#...#.#...#.#...#.#...#.#...#I",
			"I#.0.#.#.1.#.#.2.#.#.3.#.#.4.#.#.5.#I",
			"I#...#.#...#.#...#.#...#.#...#.#...#I",
			"I##.##.##.##.##.##.##.##.##.##.##.##I",
			"I...................................I",
			"I.....H.......@...........H.........I",
			"I...................................I",
			"I##.##.....##.##.....##.##..........I",
			"I#...#.....#...#.....#...#..........I",
			"I#.6.#.....#.7.#.....#.a.#....E.....I",
			"I#...#.....#...#.....#...#..........I",
			"I#####.....#####.....#####..........I",
			"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIII",
		}, nil, [10]string{}),

		mustVault("proving ground", KindArena, 0, 0, []string{
			"XXXXXXXXXXXXXXXXXXXXX",
			"X...................X",
			"X.:.....H.....:.....X",
			"X...................X",
			"X....@....<....8....X",
			"X...................X",
			"X.:.....H.....:.....X",
			"X...................X",
			"XXXXXXXXXXXXXXXXXXXXX",
		}, []string{
			"                     ",
			"                     ",
			"                     ",
			"                     ",
			"               8     ",
			"                     ",
			"                     ",
			"                     ",
			"                     ",
		}, [10]string{"", "", "", "", "", "", "", "", "arena-champion"}),

		mustVault("quest antechamber", KindQuest, 0, 0, []string{
			"XXXXXXXXXXXXXXX",
			"X.............X",
			"X.###.....###.X",
			"X.#.#..Q..#.#.X",
			"X.###.....###.X",
			"X......@......X",
			"X......<......X",
			"XXXXXXXXXXXXXXX",
		}, nil, [10]string{}),

		mustVault("wayside store", KindStore, 0, 0, []string{
			"XXXXXXXXXXX",
			"X.........X",
			"X.#######.X",
			"X.#.....#.X",
			"X.#..0..#.X",
			"X.#.....#.X",
			"X.###+###.X",
			"X....@....X",
			"X....<....X",
			"XXXXXXXXXXX",
		}, nil, [10]string{}),

		mustVault("dreamscape", KindDream, 0, 0, []string{
			"XXXXXXXXXXXXXXXXX",
			"XUUU...........UX",
			"XU..J.......K..UX",
			"X....#..F..#....X",
			"X..U...@.<...U..X",
			"X....#..F..#....X",
			"XU..K.......J..UX",
			"XUUU...........UX",
			"XXXXXXXXXXXXXXXXX",
		}, nil, [10]string{}),

		mustVault("wayside shrine", KindWilderness, 0, 0, []string{
			"IIIIIII",
			"I..H..I",
			"I.#E#.I",
			"I..;..I",
			"I.....I",
			"IIIIIII",
		}, nil, [10]string{}),
	}
}
