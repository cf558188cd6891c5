package schedule

import "tableflip.dev/semana/pkg/task"

// Seed builds the demo accounts used on first run, before any state has
// been persisted: Katherine with her fixed daily routine in the first week
// of July 2024, and Daniel with two January 2024 planning tasks.
func Seed() UserData {
	katherine := Generate(DefaultYears()...)
	routine := []task.Task{
		{TimeSlot: "06:50 - 17:15", Detail: "Rutina Matinal, Transporte y Jornada Laboral", Category: "Routine", Status: task.Pending, Note: "El horario fijo de Katherine."},
		{TimeSlot: "17:15 - 18:45", Detail: "Transición, Snack y 🏋️ Ejercicio (60 min)", Category: "Health", Status: task.Pending, Note: "Prioridad física."},
		{TimeSlot: "18:45 - 19:45", Detail: "Cena y Autocuidado", Category: "Personal", Status: task.Pending, Note: "Cena nutritiva y ducha post-entrenamiento."},
		{TimeSlot: "19:45 - 20:45", Detail: "📸 Bloque de Gestión de Contenido (60 min)", Category: "Creación de Contenido", Status: task.Pending, Note: "Tarea Diaria: Upload, Programación, Interacción (responder comentarios y DMs) y Estrategia de Divulgación."},
		{TimeSlot: "20:45 - 22:30", Detail: "Tiempo Personal (Ocio y Social)", Category: "Personal", Status: task.Pending, Note: "Tiempo extra liberado: Más de hora y media de descanso y ocio."},
		{TimeSlot: "22:30 - 23:00", Detail: "Rutina de Noche y Desconexión", Category: "Routine", Status: task.Pending},
		{TimeSlot: "23:00", Detail: "Hora de Dormir", Category: "Health", Status: task.Pending},
	}
	if weeks, ok := katherine["July 2024"]; ok && len(weeks) > 0 {
		for i := range weeks[0].Days {
			weeks[0].Days[i].Tasks = append(weeks[0].Days[i].Tasks, routine...)
		}
	}

	daniel := Generate(DefaultYears()...)
	jan := daniel["January 2024"]
	jan[0].Days[0].Tasks = append(jan[0].Days[0].Tasks, task.Task{
		TimeSlot: "09:00 - 10:00", Detail: "Reunión de Kick-off Anual", Category: "Meeting", Status: task.Completed,
	})
	jan[0].Days[2].Tasks = append(jan[0].Days[2].Tasks, task.Task{
		TimeSlot: "14:00 - 16:00", Detail: "Definir OKRs Q1", Category: "Planning", Status: task.InProgress,
	})

	return UserData{
		"user-1": {User: User{ID: "user-1", Name: "Katherine", Avatar: "👩‍💻"}, Planner: katherine},
		"user-2": {User: User{ID: "user-2", Name: "Daniel", Avatar: "👨‍🚀"}, Planner: daniel},
	}
}
