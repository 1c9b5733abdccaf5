package passage

// builtin is the default practice set.
var builtin = []string{
	"He trained beneath waterfalls and roared against the wind, not for glory, but to save one soul. His sister, half-demon, half-hope, reminded him why he fought. Every breath carried pain, but also purpose.",
	"Walls were meant to protect them, but they became prisons of the mind. He gazed at the sky not with awe, but with a hunger for freedom no cage could hold.",
	"He started as the weakest—the kind they laughed at, pitied, ignored. But the dungeon didn't care. It broke him, then rebuilt him stronger, colder, sharper.",
	"She spoke little, her eyes lowered, heart guarded. He saw her not through the veil, but through her actions—kindness wrapped in shyness, faith wrapped in courage.",
	"The world told him to give up—too poor, too late, too broken. But he rose early, stayed late, learned more, failed better. Not because he believed in luck, but because he believed in work.",
	"They mocked his beard, her niqab, their prayers at airports. But they smiled anyway. For they carried a light no ignorance could dim. In a world chasing trends, they held on to tradition.",
	"The wind carried her laughter across fields of stars. He chased it, knowing she might vanish with the dawn. Magic had a cost, and memories faded like mist.",
	"Love does not guarantee happiness, nor does sorrow erase its presence. We live in moments half-spoken, feelings half-understood.",
	"They fought monsters, but also memories. Friends turned foes, homes turned graveyards. Yet amid blood and betrayal, they clung to the idea that something better was waiting.",
	"He never texted her without a reason. Never met her eyes too long. But in his duas, her name stayed. She noticed—not through touch, but through respect.",
	"They called him weak, forgettable. But in silence, he kept rising. Alone in dungeons, he faced death and chose to live again, stronger. The world didn't notice—until it had to.",
}

// Builtin returns the passage set shipped with the binary.
func Builtin() *Set {
	set, err := NewSet(builtin)
	if err != nil {
		panic(err)
	}
	return set
}
