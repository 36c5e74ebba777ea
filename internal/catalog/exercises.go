package catalog

import "github.com/mansoorceksport/planforge/internal/domain"

// exercises is the static exercise table.
var exercises = []*domain.Exercise{
	// Bodyweight
	{
		ID: "push-ups", Name: "Push-ups", Category: domain.ExerciseBodyweight,
		MuscleGroups: []string{"chest", "triceps", "shoulders"},
		Equipment:    []string{},
		Difficulty:   domain.ExperienceBeginner,
		Instructions: []string{
			"Start in a plank position with hands slightly wider than shoulders",
			"Lower your chest to the ground while keeping your body straight",
			"Push back up to the starting position",
			"Keep your core engaged throughout the movement",
		},
		Tips:       []string{"Keep your body in a straight line", "Don't let your hips sag", "Control the movement"},
		Variations: []string{"Knee push-ups", "Incline push-ups", "Diamond push-ups"},
	},
	{
		ID: "squats", Name: "Bodyweight Squats", Category: domain.ExerciseBodyweight,
		MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"},
		Equipment:    []string{},
		Difficulty:   domain.ExperienceBeginner,
		Instructions: []string{
			"Stand with feet shoulder-width apart",
			"Lower down as if sitting back into a chair",
			"Keep your chest up and knees behind your toes",
			"Drive through your heels to return to standing",
		},
		Tips:       []string{"Keep your weight on your heels", "Don't let knees cave inward", "Go as low as comfortable"},
		Variations: []string{"Jump squats", "Single-leg squats", "Sumo squats"},
	},
	{
		ID: "plank", Name: "Plank", Category: domain.ExerciseBodyweight,
		MuscleGroups: []string{"core", "shoulders"},
		Equipment:    []string{},
		Difficulty:   domain.ExperienceBeginner,
		Instructions: []string{
			"Start in a push-up position",
			"Hold your body in a straight line from head to heels",
			"Keep your core tight and breathe normally",
			"Hold for the specified time",
		},
		Tips:       []string{"Don't let hips sag or pike up", "Keep shoulders over wrists", "Engage your glutes"},
		Variations: []string{"Side plank", "Plank with leg lifts", "Plank up-downs"},
	},
	{
		ID: "lunges", Name: "Lunges", Category: domain.ExerciseBodyweight,
		MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"},
		Equipment:    []string{},
		Difficulty:   domain.ExperienceBeginner,
		Instructions: []string{
			"Step forward with one leg into a lunge position",
			"Lower your back knee toward the ground",
			"Keep your front knee over your ankle",
			"Push back to the starting position and repeat",
		},
		Tips:       []string{"Keep your torso upright", "Don't let front knee go past toes", "Step far enough forward"},
		Variations: []string{"Reverse lunges", "Walking lunges", "Jump lunges"},
	},
	{
		ID: "burpees", Name: "Burpees", Category: domain.ExerciseBodyweight,
		MuscleGroups: []string{"full body"},
		Equipment:    []string{},
		Difficulty:   domain.ExperienceIntermediate,
		Instructions: []string{
			"Start standing, then squat down and place hands on the ground",
			"Jump feet back into a plank position",
			"Do a push-up (optional)",
			"Jump feet back to squat position",
			"Jump up with arms overhead",
		},
		Tips:       []string{"Land softly", "Keep core engaged", "Modify by stepping instead of jumping"},
		Variations: []string{"Half burpees", "Burpee box jumps", "Single-arm burpees"},
	},

	// Dumbbell
	{
		ID: "dumbbell-press", Name: "Dumbbell Chest Press", Category: domain.ExerciseDumbbell,
		MuscleGroups: []string{"chest", "triceps", "shoulders"},
		Equipment:    []string{"dumbbells", "bench"},
		Difficulty:   domain.ExperienceIntermediate,
		Instructions: []string{
			"Lie on a bench with dumbbells in each hand",
			"Start with arms extended above your chest",
			"Lower the weights to chest level",
			"Press back up to starting position",
		},
		Tips:       []string{"Keep your feet flat on the floor", "Don't arch your back excessively", "Control the weight"},
		Variations: []string{"Incline press", "Decline press", "Single-arm press"},
	},
	{
		ID: "dumbbell-rows", Name: "Dumbbell Rows", Category: domain.ExerciseDumbbell,
		MuscleGroups: []string{"back", "biceps"},
		Equipment:    []string{"dumbbells"},
		Difficulty:   domain.ExperienceIntermediate,
		Instructions: []string{
			"Bend over with a dumbbell in each hand",
			"Keep your back straight and core engaged",
			"Pull the weights to your chest",
			"Squeeze your shoulder blades together",
			"Lower with control",
		},
		Tips:       []string{"Don't round your back", "Pull with your back, not your arms", "Keep elbows close to body"},
		Variations: []string{"Single-arm rows", "Chest-supported rows", "Renegade rows"},
	},
	{
		ID: "goblet-squats", Name: "Goblet Squats", Category: domain.ExerciseDumbbell,
		MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"},
		Equipment:    []string{"dumbbell"},
		Difficulty:   domain.ExperienceIntermediate,
		Instructions: []string{
			"Hold a dumbbell at chest level with both hands",
			"Stand with feet shoulder-width apart",
			"Squat down keeping the weight at your chest",
			"Drive through your heels to stand up",
		},
		Tips:       []string{"Keep your chest up", "The weight helps with balance", "Go as deep as comfortable"},
		Variations: []string{"Goblet squat pulses", "Goblet squat to press", "Single-leg goblet squats"},
	},

	// Barbell
	{
		ID: "bench-press", Name: "Barbell Bench Press", Category: domain.ExerciseBarbell,
		MuscleGroups: []string{"chest", "triceps", "shoulders"},
		Equipment:    []string{"barbell", "bench"},
		Difficulty:   domain.ExperienceAdvanced,
		Instructions: []string{
			"Lie on bench with feet flat on floor",
			"Grip the bar slightly wider than shoulder-width",
			"Lower the bar to your chest with control",
			"Press the bar back up to full arm extension",
		},
		Tips:       []string{"Keep your shoulder blades squeezed", "Don't bounce the bar off your chest", "Use a spotter"},
		Variations: []string{"Incline bench press", "Close-grip bench press", "Pause bench press"},
	},
	{
		ID: "deadlifts", Name: "Deadlifts", Category: domain.ExerciseBarbell,
		MuscleGroups: []string{"hamstrings", "glutes", "back"},
		Equipment:    []string{"barbell"},
		Difficulty:   domain.ExperienceAdvanced,
		Instructions: []string{
			"Stand with feet hip-width apart, bar over mid-foot",
			"Bend at hips and knees to grip the bar",
			"Keep your back straight and chest up",
			"Drive through your heels to lift the bar",
			"Stand tall, then lower with control",
		},
		Tips:       []string{"Keep the bar close to your body", "Don't round your back", "Start with light weight"},
		Variations: []string{"Romanian deadlifts", "Sumo deadlifts", "Trap bar deadlifts"},
	},
	{
		ID: "barbell-squats", Name: "Barbell Back Squats", Category: domain.ExerciseBarbell,
		MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"},
		Equipment:    []string{"barbell", "squat rack"},
		Difficulty:   domain.ExperienceAdvanced,
		Instructions: []string{
			"Position the bar on your upper back",
			"Stand with feet shoulder-width apart",
			"Squat down by pushing hips back and bending knees",
			"Go down until thighs are parallel to floor",
			"Drive through heels to return to standing",
		},
		Tips:       []string{"Keep your core tight", "Don't let knees cave in", "Use proper depth"},
		Variations: []string{"Front squats", "Box squats", "Pause squats"},
	},

	// Cardio
	{
		ID: "jumping-jacks", Name: "Jumping Jacks", Category: domain.ExerciseCardio,
		MuscleGroups: []string{"full body"},
		Equipment:    []string{},
		Difficulty:   domain.ExperienceBeginner,
		Instructions: []string{
			"Start standing with feet together and arms at sides",
			"Jump feet apart while raising arms overhead",
			"Jump back to starting position",
			"Repeat at a steady pace",
		},
		Tips:       []string{"Land softly on the balls of your feet", "Keep a steady rhythm", "Modify by stepping if needed"},
		Variations: []string{"Half jacks", "Cross jacks", "Squat jacks"},
	},
	{
		ID: "mountain-climbers", Name: "Mountain Climbers", Category: domain.ExerciseCardio,
		MuscleGroups: []string{"core", "shoulders", "legs"},
		Equipment:    []string{},
		Difficulty:   domain.ExperienceIntermediate,
		Instructions: []string{
			"Start in a plank position",
			"Bring one knee toward your chest",
			"Quickly switch legs, bringing the other knee forward",
			"Continue alternating at a fast pace",
		},
		Tips:       []string{"Keep your core engaged", "Don't let hips bounce up and down", "Maintain plank position"},
		Variations: []string{"Slow mountain climbers", "Cross-body mountain climbers", "Mountain climber twists"},
	},
}
